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

// DespesaPorTipo is one row of the expense-type breakdown.
type DespesaPorTipo struct {
	Tipo  string
	Emoji string
	Total decimal.Decimal
}

type DespesaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, d *model.Despesa) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Despesa, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.DespesaFilter) ([]model.Despesa, int64, error)
	Update(ctx context.Context, d *model.Despesa) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByVenda(ctx context.Context, tx *gorm.DB, vendaID uuid.UUID) error

	// Recurring templates and their materialized instances.
	ListModelos(ctx context.Context, userID uuid.UUID) ([]model.Despesa, error)
	ExisteInstancia(ctx context.Context, userID, modeloID uuid.UUID, desde, ate time.Time) (bool, error)

	SumPorStatus(ctx context.Context, userID uuid.UUID, status string, desde, ate time.Time) (decimal.Decimal, error)
	TopTipos(ctx context.Context, userID uuid.UUID, desde, ate time.Time, limite int) ([]DespesaPorTipo, error)

	// Types
	CreateTipo(ctx context.Context, t *model.TipoDespesa) error
	FirstOrCreateTipo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, nome, emoji string) (*model.TipoDespesa, error)
	ListTipos(ctx context.Context, userID uuid.UUID) ([]model.TipoDespesa, error)
	FindTipoByID(ctx context.Context, userID, id uuid.UUID) (*model.TipoDespesa, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type despesaRepo struct{ db *gorm.DB }

func NewDespesaRepository(db *gorm.DB) DespesaRepository { return &despesaRepo{db: db} }

func (r *despesaRepo) DB() *gorm.DB { return r.db }

func (r *despesaRepo) Create(ctx context.Context, tx *gorm.DB, d *model.Despesa) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *despesaRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Despesa, error) {
	var d model.Despesa
	err := r.db.WithContext(ctx).
		Preload("Tipo").
		Where("user_id = ? AND id = ?", userID, id).
		First(&d).Error
	return &d, err
}

func (r *despesaRepo) List(ctx context.Context, userID uuid.UUID, filter dto.DespesaFilter) ([]model.Despesa, int64, error) {
	var despesas []model.Despesa
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Where("user_id = ? AND recorrente = false", userID)

	if filter.Mes != 0 && filter.Ano != 0 {
		desde := time.Date(filter.Ano, time.Month(filter.Mes), 1, 0, 0, 0, 0, time.Local)
		q = q.Where("data >= ? AND data < ?", desde, desde.AddDate(0, 1, 0))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TipoID != "" {
		q = q.Where("tipo_despesa_id = ?", filter.TipoID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Tipo").
		Order("data DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&despesas).Error

	return despesas, total, err
}

func (r *despesaRepo) Update(ctx context.Context, d *model.Despesa) error {
	return r.db.WithContext(ctx).Omit("Tipo").Save(d).Error
}

func (r *despesaRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Despesa{}).Error
}

func (r *despesaRepo) DeleteByVenda(ctx context.Context, tx *gorm.DB, vendaID uuid.UUID) error {
	return tx.WithContext(ctx).Where("venda_id = ?", vendaID).Delete(&model.Despesa{}).Error
}

func (r *despesaRepo) ListModelos(ctx context.Context, userID uuid.UUID) ([]model.Despesa, error) {
	var modelos []model.Despesa
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recorrente = true", userID).
		Find(&modelos).Error
	return modelos, err
}

func (r *despesaRepo) ExisteInstancia(ctx context.Context, userID, modeloID uuid.UUID, desde, ate time.Time) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Where("user_id = ? AND modelo_id = ? AND data >= ? AND data < ?", userID, modeloID, desde, ate).
		Count(&total).Error
	return total > 0, err
}

func (r *despesaRepo) SumPorStatus(ctx context.Context, userID uuid.UUID, status string, desde, ate time.Time) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	q := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Select("COALESCE(SUM(valor), 0) AS total").
		Where("user_id = ? AND recorrente = false AND data >= ? AND data < ?", userID, desde, ate)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Scan(&row).Error
	return row.Total, err
}

func (r *despesaRepo) TopTipos(ctx context.Context, userID uuid.UUID, desde, ate time.Time, limite int) ([]DespesaPorTipo, error) {
	var rows []DespesaPorTipo
	err := r.db.WithContext(ctx).Model(&model.Despesa{}).
		Select("tipos_despesa.nome AS tipo, tipos_despesa.emoji AS emoji, COALESCE(SUM(despesas.valor), 0) AS total").
		Joins("JOIN tipos_despesa ON tipos_despesa.id = despesas.tipo_despesa_id").
		Where("despesas.user_id = ? AND despesas.recorrente = false AND despesas.data >= ? AND despesas.data < ?", userID, desde, ate).
		Group("tipos_despesa.nome, tipos_despesa.emoji").
		Order("total DESC").
		Limit(limite).
		Scan(&rows).Error
	return rows, err
}

func (r *despesaRepo) CreateTipo(ctx context.Context, t *model.TipoDespesa) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *despesaRepo) FirstOrCreateTipo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, nome, emoji string) (*model.TipoDespesa, error) {
	var t model.TipoDespesa
	err := tx.WithContext(ctx).
		Where("user_id = ? AND nome = ?", userID, nome).
		Attrs(model.TipoDespesa{UserID: userID, Nome: nome, Emoji: emoji}).
		FirstOrCreate(&t).Error
	return &t, err
}

func (r *despesaRepo) ListTipos(ctx context.Context, userID uuid.UUID) ([]model.TipoDespesa, error) {
	var tipos []model.TipoDespesa
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("nome ASC").
		Find(&tipos).Error
	return tipos, err
}

func (r *despesaRepo) FindTipoByID(ctx context.Context, userID, id uuid.UUID) (*model.TipoDespesa, error) {
	var t model.TipoDespesa
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&t).Error
	return &t, err
}
