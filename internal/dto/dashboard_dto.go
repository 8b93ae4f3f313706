package dto

import "github.com/shopspring/decimal"

// VendasPorCanal is one slice of the channel breakdown chart.
type VendasPorCanal struct {
	Canal      string          `json:"canal"`
	Icone      string          `json:"icone"`
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

// ProdutoMaisVendido is one row of the best-sellers ranking.
type ProdutoMaisVendido struct {
	Nome       string          `json:"nome"`
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

// DespesaPorTipo is one row of the expense-type breakdown.
type DespesaPorTipo struct {
	Tipo  string          `json:"tipo"`
	Emoji string          `json:"emoji"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse aggregates the home screen numbers for one month.
type DashboardResponse struct {
	Mes              int                  `json:"mes"`
	Ano              int                  `json:"ano"`
	FaturamentoHoje  decimal.Decimal      `json:"faturamento_hoje"`
	LucroHoje        decimal.Decimal      `json:"lucro_hoje"`
	VendasHoje       int64                `json:"vendas_hoje"`
	FaturamentoMes   decimal.Decimal      `json:"faturamento_mes"`
	LucroMes         decimal.Decimal      `json:"lucro_mes"`
	DespesasMes      decimal.Decimal      `json:"despesas_mes"`
	DespesasPendente decimal.Decimal      `json:"despesas_pendentes"`
	TotalVendas      int64                `json:"total_vendas"`
	TicketMedio      decimal.Decimal      `json:"ticket_medio"`
	PorCanal         []VendasPorCanal     `json:"por_canal"`
	TopProdutos      []ProdutoMaisVendido `json:"top_produtos"`
	TopDespesas      []DespesaPorTipo     `json:"top_despesas"`
	Mei              MeiStatusResponse    `json:"mei"`
}
