package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs shared by the service tests. All of them hand a
// nil *gorm.DB to the services, which makes runTx call its body directly.

// ── Produto ──────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) seed(p model.Produto) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := p
	r.produtos[p.ID] = &cp
	return p.ID
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProdutoRepo) FindByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) ([]model.Produto, error) {
	var out []model.Produto
	for _, id := range ids {
		if p, ok := r.produtos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) List(_ context.Context, _ uuid.UUID) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.produtos, id)
	return nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── Canal ────────────────────────────────────────────────────────────────────

type stubCanalRepo struct {
	canais      map[uuid.UUID]*model.CanalVenda
	vendasCount map[uuid.UUID]int64
}

func newStubCanalRepo() *stubCanalRepo {
	return &stubCanalRepo{
		canais:      make(map[uuid.UUID]*model.CanalVenda),
		vendasCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubCanalRepo) seed(c model.CanalVenda) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := c
	r.canais[c.ID] = &cp
	return c.ID
}

func (r *stubCanalRepo) Create(_ context.Context, c *model.CanalVenda) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.canais[c.ID] = &cp
	return nil
}

func (r *stubCanalRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.CanalVenda, error) {
	c, ok := r.canais[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCanalRepo) List(_ context.Context, _ uuid.UUID) ([]model.CanalVenda, error) {
	var out []model.CanalVenda
	for _, c := range r.canais {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCanalRepo) Update(_ context.Context, c *model.CanalVenda) error {
	cp := *c
	r.canais[c.ID] = &cp
	return nil
}

func (r *stubCanalRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.canais, id)
	return nil
}

func (r *stubCanalRepo) CountVendas(_ context.Context, _, canalID uuid.UUID) (int64, error) {
	return r.vendasCount[canalID], nil
}

var _ repository.CanalRepository = (*stubCanalRepo)(nil)

// ── Venda ────────────────────────────────────────────────────────────────────

type stubVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
	itens  map[uuid.UUID]*model.ItemVenda
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{
		vendas: make(map[uuid.UUID]*model.Venda),
		itens:  make(map[uuid.UUID]*model.ItemVenda),
	}
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

func (r *stubVendaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	for i := range v.Itens {
		it := &v.Itens[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.VendaID = v.ID
		cp := *it
		r.itens[it.ID] = &cp
	}
	cp := *v
	cp.Itens = nil
	r.vendas[v.ID] = &cp
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	for _, it := range r.itens {
		if it.VendaID == id {
			cp.Itens = append(cp.Itens, *it)
		}
	}
	return &cp, nil
}

func (r *stubVendaRepo) List(_ context.Context, _ uuid.UUID, _ dto.VendaFilter) ([]model.Venda, int64, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVendaRepo) Update(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	cp := *v
	cp.Itens = nil
	cp.Canal = nil
	r.vendas[v.ID] = &cp
	return nil
}

func (r *stubVendaRepo) Delete(_ context.Context, _ *gorm.DB, _, id uuid.UUID) error {
	delete(r.vendas, id)
	return nil
}

func (r *stubVendaRepo) CreateItem(_ context.Context, _ *gorm.DB, item *model.ItemVenda) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *stubVendaRepo) UpdateItem(_ context.Context, _ *gorm.DB, item *model.ItemVenda) error {
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *stubVendaRepo) DeleteItens(_ context.Context, _ *gorm.DB, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.itens, id)
	}
	return nil
}

func (r *stubVendaRepo) DeleteItensByVenda(_ context.Context, _ *gorm.DB, vendaID uuid.UUID) error {
	for id, it := range r.itens {
		if it.VendaID == vendaID {
			delete(r.itens, id)
		}
	}
	return nil
}

func (r *stubVendaRepo) SumValorTotal(_ context.Context, _ uuid.UUID, desde, ate time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.vendas {
		if !v.CreatedAt.Before(desde) && v.CreatedAt.Before(ate) {
			total = total.Add(v.ValorTotal)
		}
	}
	return total, nil
}

func (r *stubVendaRepo) Agregado(_ context.Context, _ uuid.UUID, desde, ate time.Time) (repository.VendaAgregado, error) {
	agg := repository.VendaAgregado{Faturamento: decimal.Zero, Lucro: decimal.Zero}
	for _, v := range r.vendas {
		if !v.CreatedAt.Before(desde) && v.CreatedAt.Before(ate) {
			agg.Faturamento = agg.Faturamento.Add(v.ValorTotal)
			agg.Lucro = agg.Lucro.Add(v.LucroTotal)
			agg.Total++
		}
	}
	return agg, nil
}

func (r *stubVendaRepo) AgregadoPorCanal(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]repository.VendaPorCanal, error) {
	return nil, nil
}

func (r *stubVendaRepo) TopProdutos(_ context.Context, _ uuid.UUID, desde, ate time.Time, limite int) ([]repository.VendaTopProduto, error) {
	porNome := make(map[string]*repository.VendaTopProduto)
	for _, it := range r.itens {
		v, ok := r.vendas[it.VendaID]
		if !ok || v.CreatedAt.Before(desde) || !v.CreatedAt.Before(ate) {
			continue
		}
		row, ok := porNome[it.ProdutoNome]
		if !ok {
			row = &repository.VendaTopProduto{Nome: it.ProdutoNome, Total: decimal.Zero}
			porNome[it.ProdutoNome] = row
		}
		row.Quantidade += int64(it.Quantidade)
		row.Total = row.Total.Add(it.Subtotal)
	}
	rows := make([]repository.VendaTopProduto, 0, len(porNome))
	for _, row := range porNome {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Quantidade > rows[j].Quantidade })
	if len(rows) > limite {
		rows = rows[:limite]
	}
	return rows, nil
}

func (r *stubVendaRepo) PrimeiraVenda(_ context.Context, _ uuid.UUID) (*time.Time, error) {
	var datas []time.Time
	for _, v := range r.vendas {
		datas = append(datas, v.CreatedAt)
	}
	if len(datas) == 0 {
		return nil, nil
	}
	sort.Slice(datas, func(i, j int) bool { return datas[i].Before(datas[j]) })
	return &datas[0], nil
}

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── Despesa ──────────────────────────────────────────────────────────────────

type stubDespesaRepo struct {
	despesas map[uuid.UUID]*model.Despesa
	tipos    map[uuid.UUID]*model.TipoDespesa
}

func newStubDespesaRepo() *stubDespesaRepo {
	return &stubDespesaRepo{
		despesas: make(map[uuid.UUID]*model.Despesa),
		tipos:    make(map[uuid.UUID]*model.TipoDespesa),
	}
}

func (r *stubDespesaRepo) DB() *gorm.DB { return nil }

func (r *stubDespesaRepo) seedTipo(nome string) uuid.UUID {
	t := &model.TipoDespesa{ID: uuid.New(), Nome: nome, Emoji: "💡"}
	r.tipos[t.ID] = t
	return t.ID
}

func (r *stubDespesaRepo) seed(d model.Despesa) uuid.UUID {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := d
	r.despesas[d.ID] = &cp
	return d.ID
}

func (r *stubDespesaRepo) Create(_ context.Context, _ *gorm.DB, d *model.Despesa) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.despesas[d.ID] = &cp
	return nil
}

func (r *stubDespesaRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Despesa, error) {
	d, ok := r.despesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubDespesaRepo) List(_ context.Context, _ uuid.UUID, _ dto.DespesaFilter) ([]model.Despesa, int64, error) {
	var out []model.Despesa
	for _, d := range r.despesas {
		if !d.Recorrente {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubDespesaRepo) Update(_ context.Context, d *model.Despesa) error {
	cp := *d
	r.despesas[d.ID] = &cp
	return nil
}

func (r *stubDespesaRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.despesas, id)
	return nil
}

func (r *stubDespesaRepo) DeleteByVenda(_ context.Context, _ *gorm.DB, vendaID uuid.UUID) error {
	for id, d := range r.despesas {
		if d.VendaID != nil && *d.VendaID == vendaID {
			delete(r.despesas, id)
		}
	}
	return nil
}

func (r *stubDespesaRepo) ListModelos(_ context.Context, _ uuid.UUID) ([]model.Despesa, error) {
	var out []model.Despesa
	for _, d := range r.despesas {
		if d.Recorrente {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDespesaRepo) ExisteInstancia(_ context.Context, _, modeloID uuid.UUID, desde, ate time.Time) (bool, error) {
	for _, d := range r.despesas {
		if d.ModeloID != nil && *d.ModeloID == modeloID &&
			!d.Data.Before(desde) && d.Data.Before(ate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubDespesaRepo) SumPorStatus(_ context.Context, _ uuid.UUID, status string, desde, ate time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range r.despesas {
		if d.Recorrente {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		if !d.Data.Before(desde) && d.Data.Before(ate) {
			total = total.Add(d.Valor)
		}
	}
	return total, nil
}

func (r *stubDespesaRepo) TopTipos(_ context.Context, _ uuid.UUID, desde, ate time.Time, limite int) ([]repository.DespesaPorTipo, error) {
	porTipo := make(map[uuid.UUID]*repository.DespesaPorTipo)
	for _, d := range r.despesas {
		if d.Recorrente || d.Data.Before(desde) || !d.Data.Before(ate) {
			continue
		}
		row, ok := porTipo[d.TipoDespesaID]
		if !ok {
			nome, emoji := "", ""
			if t, found := r.tipos[d.TipoDespesaID]; found {
				nome, emoji = t.Nome, t.Emoji
			}
			row = &repository.DespesaPorTipo{Tipo: nome, Emoji: emoji, Total: decimal.Zero}
			porTipo[d.TipoDespesaID] = row
		}
		row.Total = row.Total.Add(d.Valor)
	}
	rows := make([]repository.DespesaPorTipo, 0, len(porTipo))
	for _, row := range porTipo {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total.GreaterThan(rows[j].Total) })
	if len(rows) > limite {
		rows = rows[:limite]
	}
	return rows, nil
}

func (r *stubDespesaRepo) CreateTipo(_ context.Context, t *model.TipoDespesa) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *stubDespesaRepo) FirstOrCreateTipo(_ context.Context, _ *gorm.DB, userID uuid.UUID, nome, emoji string) (*model.TipoDespesa, error) {
	for _, t := range r.tipos {
		if t.Nome == nome {
			cp := *t
			return &cp, nil
		}
	}
	t := &model.TipoDespesa{ID: uuid.New(), UserID: userID, Nome: nome, Emoji: emoji}
	r.tipos[t.ID] = t
	cp := *t
	return &cp, nil
}

func (r *stubDespesaRepo) ListTipos(_ context.Context, _ uuid.UUID) ([]model.TipoDespesa, error) {
	var out []model.TipoDespesa
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubDespesaRepo) FindTipoByID(_ context.Context, _, id uuid.UUID) (*model.TipoDespesa, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

var _ repository.DespesaRepository = (*stubDespesaRepo)(nil)

// ── Fechamento ───────────────────────────────────────────────────────────────

type chaveMes struct{ mes, ano int }

type stubFechamentoRepo struct {
	rows map[chaveMes]*model.FechamentoMensal
}

func newStubFechamentoRepo() *stubFechamentoRepo {
	return &stubFechamentoRepo{rows: make(map[chaveMes]*model.FechamentoMensal)}
}

func (r *stubFechamentoRepo) Upsert(_ context.Context, f *model.FechamentoMensal) error {
	k := chaveMes{f.Mes, f.Ano}
	if atual, ok := r.rows[k]; ok {
		atual.Faturamento = f.Faturamento
		return nil
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cp := *f
	cp.TransferenciaPF = decimal.Zero
	r.rows[k] = &cp
	return nil
}

func (r *stubFechamentoRepo) Find(_ context.Context, _ uuid.UUID, mes, ano int) (*model.FechamentoMensal, error) {
	f, ok := r.rows[chaveMes{mes, ano}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFechamentoRepo) AtualizarTransferencia(_ context.Context, _ uuid.UUID, mes, ano int, valor decimal.Decimal) error {
	f, ok := r.rows[chaveMes{mes, ano}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.TransferenciaPF = valor
	return nil
}

func (r *stubFechamentoRepo) ListByAno(_ context.Context, _ uuid.UUID, ano int) ([]model.FechamentoMensal, error) {
	var out []model.FechamentoMensal
	for _, f := range r.rows {
		if f.Ano == ano {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFechamentoRepo) ListAll(_ context.Context, _ uuid.UUID) ([]model.FechamentoMensal, error) {
	var out []model.FechamentoMensal
	for _, f := range r.rows {
		out = append(out, *f)
	}
	// Newest first, like the real repository.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ano != out[j].Ano {
			return out[i].Ano > out[j].Ano
		}
		return out[i].Mes > out[j].Mes
	})
	return out, nil
}

func (r *stubFechamentoRepo) Ultimo(_ context.Context, _ uuid.UUID) (*model.FechamentoMensal, error) {
	var ultimo *model.FechamentoMensal
	for _, f := range r.rows {
		if ultimo == nil || f.Ano > ultimo.Ano || (f.Ano == ultimo.Ano && f.Mes > ultimo.Mes) {
			ultimo = f
		}
	}
	if ultimo == nil {
		return nil, nil
	}
	cp := *ultimo
	return &cp, nil
}

var _ repository.FechamentoRepository = (*stubFechamentoRepo)(nil)

// ── Configuração ─────────────────────────────────────────────────────────────

type stubConfiguracaoRepo struct {
	cfg *model.ConfiguracaoLoja
}

func (r *stubConfiguracaoRepo) FirstOrCreate(_ context.Context, padrao *model.ConfiguracaoLoja) (*model.ConfiguracaoLoja, error) {
	if r.cfg == nil {
		cp := *padrao
		if cp.ID == uuid.Nil {
			cp.ID = uuid.New()
		}
		r.cfg = &cp
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *stubConfiguracaoRepo) Find(_ context.Context, _ uuid.UUID) (*model.ConfiguracaoLoja, error) {
	if r.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *stubConfiguracaoRepo) Update(_ context.Context, c *model.ConfiguracaoLoja) error {
	cp := *c
	r.cfg = &cp
	return nil
}

var _ repository.ConfiguracaoRepository = (*stubConfiguracaoRepo)(nil)

// ── Fornecedor ───────────────────────────────────────────────────────────────

type stubFornecedorRepo struct {
	fornecedores map[uuid.UUID]*model.Fornecedor
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: make(map[uuid.UUID]*model.Fornecedor)}
}

func (r *stubFornecedorRepo) seed(f model.Fornecedor) uuid.UUID {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cp := f
	r.fornecedores[f.ID] = &cp
	return f.ID
}

func (r *stubFornecedorRepo) Create(_ context.Context, f *model.Fornecedor) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cp := *f
	r.fornecedores[f.ID] = &cp
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFornecedorRepo) List(_ context.Context, _ uuid.UUID) ([]model.Fornecedor, error) {
	var out []model.Fornecedor
	for _, f := range r.fornecedores {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFornecedorRepo) Update(_ context.Context, f *model.Fornecedor) error {
	cp := *f
	r.fornecedores[f.ID] = &cp
	return nil
}

func (r *stubFornecedorRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.fornecedores, id)
	return nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── Composição ───────────────────────────────────────────────────────────────

type stubComposicaoRepo struct {
	composicoes map[uuid.UUID]*model.Composicao
	itens       map[uuid.UUID]*model.ItemCusto
}

func newStubComposicaoRepo() *stubComposicaoRepo {
	return &stubComposicaoRepo{
		composicoes: make(map[uuid.UUID]*model.Composicao),
		itens:       make(map[uuid.UUID]*model.ItemCusto),
	}
}

func (r *stubComposicaoRepo) DB() *gorm.DB { return nil }

func (r *stubComposicaoRepo) Create(_ context.Context, _ *gorm.DB, c *model.Composicao) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Itens {
		it := &c.Itens[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.ComposicaoID = c.ID
		cp := *it
		r.itens[it.ID] = &cp
	}
	cp := *c
	cp.Itens = nil
	r.composicoes[c.ID] = &cp
	return nil
}

func (r *stubComposicaoRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Composicao, error) {
	c, ok := r.composicoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	for _, it := range r.itens {
		if it.ComposicaoID == id {
			cp.Itens = append(cp.Itens, *it)
		}
	}
	return &cp, nil
}

func (r *stubComposicaoRepo) List(_ context.Context, _ uuid.UUID) ([]model.Composicao, error) {
	var out []model.Composicao
	for _, c := range r.composicoes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubComposicaoRepo) Update(_ context.Context, _ *gorm.DB, c *model.Composicao) error {
	cp := *c
	cp.Itens = nil
	r.composicoes[c.ID] = &cp
	return nil
}

func (r *stubComposicaoRepo) Delete(_ context.Context, _ *gorm.DB, _, id uuid.UUID) error {
	delete(r.composicoes, id)
	return nil
}

func (r *stubComposicaoRepo) CreateItem(_ context.Context, _ *gorm.DB, item *model.ItemCusto) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *stubComposicaoRepo) UpdateItem(_ context.Context, _ *gorm.DB, item *model.ItemCusto) error {
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *stubComposicaoRepo) DeleteItens(_ context.Context, _ *gorm.DB, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.itens, id)
	}
	return nil
}

func (r *stubComposicaoRepo) DeleteItensByComposicao(_ context.Context, _ *gorm.DB, composicaoID uuid.UUID) error {
	for id, it := range r.itens {
		if it.ComposicaoID == composicaoID {
			delete(r.itens, id)
		}
	}
	return nil
}

func (r *stubComposicaoRepo) CountItensByFornecedor(_ context.Context, _, fornecedorID uuid.UUID) (int64, error) {
	var n int64
	for _, it := range r.itens {
		if it.FornecedorID != nil && *it.FornecedorID == fornecedorID {
			n++
		}
	}
	return n, nil
}

var _ repository.ComposicaoRepository = (*stubComposicaoRepo)(nil)

// ── Dashboard ────────────────────────────────────────────────────────────────

// stubDashboard counts invalidations so tests can assert the cache was busted.
type stubDashboard struct {
	invalidacoes int
}

func (s *stubDashboard) Resumo(_ context.Context, _ uuid.UUID, _, _ int) (*dto.DashboardResponse, error) {
	return nil, errors.New("não implementado")
}

func (s *stubDashboard) Invalidar(_ context.Context, _ uuid.UUID) error {
	s.invalidacoes++
	return nil
}

var _ DashboardService = (*stubDashboard)(nil)
