package service

import (
	"testing"

	"acaimanager/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Cart worth 20.00 with 8.00 of product cost.
func carrinhoPadrao() []ItemVendido {
	return []ItemVendido{
		{ValorUnitario: dec("10.00"), CustoUnitario: dec("4.00"), Quantidade: 2},
	}
}

func TestCalcularVendaFreteNaoTaxavel(t *testing.T) {
	totais := CalcularVenda(carrinhoPadrao(), dec("10"), dec("5.00"), false, config.PoliticaFreteTaxavel)

	assert.True(t, totais.SubtotalProdutos.Equal(dec("20.00")), "subtotal: %s", totais.SubtotalProdutos)
	assert.True(t, totais.CustoProdutos.Equal(dec("8.00")), "custo: %s", totais.CustoProdutos)
	// Fee over the subtotal only: 20 * 10% = 2
	assert.True(t, totais.TaxaCanal.Equal(dec("2.00")), "taxa: %s", totais.TaxaCanal)
	assert.True(t, totais.ValorTotal.Equal(dec("25.00")), "total: %s", totais.ValorTotal)
	// 25 - 8 - 2
	assert.True(t, totais.LucroTotal.Equal(dec("15.00")), "lucro: %s", totais.LucroTotal)
}

func TestCalcularVendaFreteTaxavel(t *testing.T) {
	totais := CalcularVenda(carrinhoPadrao(), dec("10"), dec("5.00"), true, config.PoliticaFreteTaxavel)

	// Fee over subtotal+frete: 25 * 10% = 2.50
	assert.True(t, totais.TaxaCanal.Equal(dec("2.50")), "taxa: %s", totais.TaxaCanal)
	assert.True(t, totais.ValorTotal.Equal(dec("25.00")), "total: %s", totais.ValorTotal)
	assert.True(t, totais.LucroTotal.Equal(dec("14.50")), "lucro: %s", totais.LucroTotal)
}

func TestCalcularVendaPoliticaLegado(t *testing.T) {
	totais := CalcularVenda(carrinhoPadrao(), dec("10"), dec("5.00"), false, config.PoliticaLegado)

	// Legacy rule: fee over the subtotal, discounted from the charged total.
	assert.True(t, totais.TaxaCanal.Equal(dec("2.00")), "taxa: %s", totais.TaxaCanal)
	assert.True(t, totais.ValorTotal.Equal(dec("23.00")), "total: %s", totais.ValorTotal)
	// (20 - 8) - 2
	assert.True(t, totais.LucroTotal.Equal(dec("10.00")), "lucro: %s", totais.LucroTotal)
}

func TestCalcularVendaLegadoIgnoraFreteTaxavel(t *testing.T) {
	com := CalcularVenda(carrinhoPadrao(), dec("10"), dec("5.00"), true, config.PoliticaLegado)
	sem := CalcularVenda(carrinhoPadrao(), dec("10"), dec("5.00"), false, config.PoliticaLegado)

	assert.True(t, com.TaxaCanal.Equal(sem.TaxaCanal))
	assert.True(t, com.ValorTotal.Equal(sem.ValorTotal))
}

func TestCalcularVendaCarrinhoVazio(t *testing.T) {
	totais := CalcularVenda(nil, dec("10"), decimal.Zero, false, config.PoliticaFreteTaxavel)

	assert.True(t, totais.SubtotalProdutos.IsZero())
	assert.True(t, totais.TaxaCanal.IsZero())
	assert.True(t, totais.ValorTotal.IsZero())
	assert.True(t, totais.LucroTotal.IsZero())
}

func TestCalcularVendaMultiplosItens(t *testing.T) {
	itens := []ItemVendido{
		{ValorUnitario: dec("15.00"), CustoUnitario: dec("5.50"), Quantidade: 1},
		{ValorUnitario: dec("8.00"), CustoUnitario: dec("2.25"), Quantidade: 3},
	}
	totais := CalcularVenda(itens, dec("12"), decimal.Zero, false, config.PoliticaFreteTaxavel)

	// 15 + 24 = 39; custo 5.50 + 6.75 = 12.25
	assert.True(t, totais.SubtotalProdutos.Equal(dec("39.00")), "subtotal: %s", totais.SubtotalProdutos)
	assert.True(t, totais.CustoProdutos.Equal(dec("12.25")), "custo: %s", totais.CustoProdutos)
	assert.True(t, totais.TaxaCanal.Equal(dec("4.68")), "taxa: %s", totais.TaxaCanal)
	assert.True(t, totais.ValorTotal.Equal(dec("39.00")), "total: %s", totais.ValorTotal)
	assert.True(t, totais.LucroTotal.Equal(dec("22.07")), "lucro: %s", totais.LucroTotal)
}
