package service

import (
	"acaimanager/internal/config"

	"github.com/shopspring/decimal"
)

// ItemVendido is one resolved cart line fed into the pricing calculator.
type ItemVendido struct {
	ValorUnitario decimal.Decimal
	CustoUnitario decimal.Decimal
	Quantidade    int
}

// TotaisVenda holds every derived money field of a sale. Values carry full
// precision; rounding happens only at presentation time.
type TotaisVenda struct {
	SubtotalProdutos decimal.Decimal
	CustoProdutos    decimal.Decimal
	TaxaCanal        decimal.Decimal
	ValorTotal       decimal.Decimal
	LucroTotal       decimal.Decimal
}

// CalcularVenda derives a sale's totals from its cart, channel fee percentage
// and shipping. politica selects the fee base:
//
//   - config.PoliticaFreteTaxavel: the fee applies over subtotal+frete when
//     the sale is flagged freteTaxavel, over the subtotal otherwise, and
//     valorTotal = subtotal + frete.
//   - config.PoliticaLegado: the fee always applies over the subtotal and is
//     discounted from the charged total (valorTotal = subtotal + frete - taxa).
//
// An empty cart yields all-zero totals.
func CalcularVenda(itens []ItemVendido, taxaPct, frete decimal.Decimal, freteTaxavel bool, politica string) TotaisVenda {
	subtotal := decimal.Zero
	custo := decimal.Zero
	for _, it := range itens {
		qtd := decimal.NewFromInt(int64(it.Quantidade))
		subtotal = subtotal.Add(it.ValorUnitario.Mul(qtd))
		custo = custo.Add(it.CustoUnitario.Mul(qtd))
	}

	cem := decimal.NewFromInt(100)

	if politica == config.PoliticaLegado {
		taxa := subtotal.Mul(taxaPct).Div(cem)
		valorTotal := subtotal.Add(frete).Sub(taxa)
		lucro := subtotal.Sub(custo).Sub(taxa)
		return TotaisVenda{
			SubtotalProdutos: subtotal,
			CustoProdutos:    custo,
			TaxaCanal:        taxa,
			ValorTotal:       valorTotal,
			LucroTotal:       lucro,
		}
	}

	baseTaxa := subtotal
	if freteTaxavel {
		baseTaxa = baseTaxa.Add(frete)
	}
	taxa := baseTaxa.Mul(taxaPct).Div(cem)
	valorTotal := subtotal.Add(frete)
	lucro := valorTotal.Sub(custo).Sub(taxa)

	return TotaisVenda{
		SubtotalProdutos: subtotal,
		CustoProdutos:    custo,
		TaxaCanal:        taxa,
		ValorTotal:       valorTotal,
		LucroTotal:       lucro,
	}
}
