package repository

import (
	"context"

	"acaimanager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FechamentoRepository interface {
	Upsert(ctx context.Context, f *model.FechamentoMensal) error
	Find(ctx context.Context, userID uuid.UUID, mes, ano int) (*model.FechamentoMensal, error)
	AtualizarTransferencia(ctx context.Context, userID uuid.UUID, mes, ano int, valor decimal.Decimal) error
	ListByAno(ctx context.Context, userID uuid.UUID, ano int) ([]model.FechamentoMensal, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]model.FechamentoMensal, error)
	Ultimo(ctx context.Context, userID uuid.UUID) (*model.FechamentoMensal, error)
}

type fechamentoRepo struct{ db *gorm.DB }

func NewFechamentoRepository(db *gorm.DB) FechamentoRepository { return &fechamentoRepo{db: db} }

// Upsert refreshes faturamento when the (user, mes, ano) row already exists.
// transferencia_pf is deliberately left untouched on conflict.
func (r *fechamentoRepo) Upsert(ctx context.Context, f *model.FechamentoMensal) error {
	var existente model.FechamentoMensal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND mes = ? AND ano = ?", f.UserID, f.Mes, f.Ano).
		First(&existente).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(f).Error
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&existente).
		Update("faturamento", f.Faturamento).Error
}

func (r *fechamentoRepo) Find(ctx context.Context, userID uuid.UUID, mes, ano int) (*model.FechamentoMensal, error) {
	var f model.FechamentoMensal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND mes = ? AND ano = ?", userID, mes, ano).
		First(&f).Error
	return &f, err
}

func (r *fechamentoRepo) AtualizarTransferencia(ctx context.Context, userID uuid.UUID, mes, ano int, valor decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.FechamentoMensal{}).
		Where("user_id = ? AND mes = ? AND ano = ?", userID, mes, ano).
		Update("transferencia_pf", valor).Error
}

func (r *fechamentoRepo) ListByAno(ctx context.Context, userID uuid.UUID, ano int) ([]model.FechamentoMensal, error) {
	var fechamentos []model.FechamentoMensal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ano = ?", userID, ano).
		Order("mes ASC").
		Find(&fechamentos).Error
	return fechamentos, err
}

// ListAll returns the closing history newest first, the order the summary
// screen shows it in.
func (r *fechamentoRepo) ListAll(ctx context.Context, userID uuid.UUID) ([]model.FechamentoMensal, error) {
	var fechamentos []model.FechamentoMensal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ano DESC, mes DESC").
		Find(&fechamentos).Error
	return fechamentos, err
}

func (r *fechamentoRepo) Ultimo(ctx context.Context, userID uuid.UUID) (*model.FechamentoMensal, error) {
	var f model.FechamentoMensal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ano DESC, mes DESC").
		First(&f).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
