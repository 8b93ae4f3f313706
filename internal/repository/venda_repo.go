package repository

import (
	"context"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaAgregado is the rolled-up month used by the dashboard and the
// monthly closing reconciler.
type VendaAgregado struct {
	Faturamento decimal.Decimal
	Lucro       decimal.Decimal
	Total       int64
}

// VendaPorCanal is one row of the channel breakdown aggregate.
type VendaPorCanal struct {
	Canal      string
	Icone      string
	Quantidade int64
	Total      decimal.Decimal
}

// VendaTopProduto is one row of the best-sellers ranking, keyed by the
// snapshotted product name so deleted products still rank.
type VendaTopProduto struct {
	Nome       string
	Quantidade int64
	Total      decimal.Decimal
}

type VendaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Venda, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.VendaFilter) ([]model.Venda, int64, error)
	Update(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error

	// Item children — always mutated inside the parent's transaction.
	CreateItem(ctx context.Context, tx *gorm.DB, item *model.ItemVenda) error
	UpdateItem(ctx context.Context, tx *gorm.DB, item *model.ItemVenda) error
	DeleteItens(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	DeleteItensByVenda(ctx context.Context, tx *gorm.DB, vendaID uuid.UUID) error

	// Aggregates over [desde, ate) in the server's local calendar.
	SumValorTotal(ctx context.Context, userID uuid.UUID, desde, ate time.Time) (decimal.Decimal, error)
	Agregado(ctx context.Context, userID uuid.UUID, desde, ate time.Time) (VendaAgregado, error)
	AgregadoPorCanal(ctx context.Context, userID uuid.UUID, desde, ate time.Time) ([]VendaPorCanal, error)
	TopProdutos(ctx context.Context, userID uuid.UUID, desde, ate time.Time, limite int) ([]VendaTopProduto, error)
	PrimeiraVenda(ctx context.Context, userID uuid.UUID) (*time.Time, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Canal").Preload("Itens").
		Where("user_id = ? AND id = ?", userID, id).
		First(&v).Error
	return &v, err
}

func (r *vendaRepo) List(ctx context.Context, userID uuid.UUID, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venda{}).Where("user_id = ?", userID)

	if filter.Mes != 0 && filter.Ano != 0 {
		desde := time.Date(filter.Ano, time.Month(filter.Mes), 1, 0, 0, 0, 0, time.Local)
		q = q.Where("created_at >= ? AND created_at < ?", desde, desde.AddDate(0, 1, 0))
	}
	if filter.CanalID != "" {
		q = q.Where("canal_venda_id = ?", filter.CanalID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Canal").Preload("Itens").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&vendas).Error

	return vendas, total, err
}

func (r *vendaRepo) Update(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	return tx.WithContext(ctx).Omit("Itens", "Canal").Save(v).Error
}

func (r *vendaRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Venda{}).Error
}

func (r *vendaRepo) CreateItem(ctx context.Context, tx *gorm.DB, item *model.ItemVenda) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *vendaRepo) UpdateItem(ctx context.Context, tx *gorm.DB, item *model.ItemVenda) error {
	return tx.WithContext(ctx).Save(item).Error
}

func (r *vendaRepo) DeleteItens(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ItemVenda{}).Error
}

func (r *vendaRepo) DeleteItensByVenda(ctx context.Context, tx *gorm.DB, vendaID uuid.UUID) error {
	return tx.WithContext(ctx).Where("venda_id = ?", vendaID).Delete(&model.ItemVenda{}).Error
}

func (r *vendaRepo) SumValorTotal(ctx context.Context, userID uuid.UUID, desde, ate time.Time) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(valor_total), 0) AS total").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, desde, ate).
		Scan(&row).Error
	return row.Total, err
}

func (r *vendaRepo) Agregado(ctx context.Context, userID uuid.UUID, desde, ate time.Time) (VendaAgregado, error) {
	var agg VendaAgregado
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(valor_total), 0) AS faturamento, COALESCE(SUM(lucro_total), 0) AS lucro, COUNT(*) AS total").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, desde, ate).
		Scan(&agg).Error
	return agg, err
}

func (r *vendaRepo) AgregadoPorCanal(ctx context.Context, userID uuid.UUID, desde, ate time.Time) ([]VendaPorCanal, error) {
	var rows []VendaPorCanal
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("canais_venda.nome AS canal, canais_venda.icone AS icone, COUNT(*) AS quantidade, COALESCE(SUM(vendas.valor_total), 0) AS total").
		Joins("JOIN canais_venda ON canais_venda.id = vendas.canal_venda_id").
		Where("vendas.user_id = ? AND vendas.created_at >= ? AND vendas.created_at < ?", userID, desde, ate).
		Group("canais_venda.nome, canais_venda.icone").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *vendaRepo) TopProdutos(ctx context.Context, userID uuid.UUID, desde, ate time.Time, limite int) ([]VendaTopProduto, error) {
	var rows []VendaTopProduto
	err := r.db.WithContext(ctx).Model(&model.ItemVenda{}).
		Select("itens_venda.produto_nome AS nome, SUM(itens_venda.quantidade) AS quantidade, COALESCE(SUM(itens_venda.subtotal), 0) AS total").
		Joins("JOIN vendas ON vendas.id = itens_venda.venda_id").
		Where("vendas.user_id = ? AND vendas.created_at >= ? AND vendas.created_at < ?", userID, desde, ate).
		Group("itens_venda.produto_nome").
		Order("quantidade DESC").
		Limit(limite).
		Scan(&rows).Error
	return rows, err
}

func (r *vendaRepo) PrimeiraVenda(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&v).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v.CreatedAt, nil
}
