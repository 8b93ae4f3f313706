package repository

import (
	"context"

	"acaimanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CanalRepository interface {
	Create(ctx context.Context, c *model.CanalVenda) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.CanalVenda, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.CanalVenda, error)
	Update(ctx context.Context, c *model.CanalVenda) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CountVendas(ctx context.Context, userID, canalID uuid.UUID) (int64, error)
}

type canalRepo struct{ db *gorm.DB }

func NewCanalRepository(db *gorm.DB) CanalRepository { return &canalRepo{db: db} }

func (r *canalRepo) Create(ctx context.Context, c *model.CanalVenda) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *canalRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.CanalVenda, error) {
	var c model.CanalVenda
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&c).Error
	return &c, err
}

func (r *canalRepo) List(ctx context.Context, userID uuid.UUID) ([]model.CanalVenda, error) {
	var canais []model.CanalVenda
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("nome ASC").
		Find(&canais).Error
	return canais, err
}

func (r *canalRepo) Update(ctx context.Context, c *model.CanalVenda) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *canalRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.CanalVenda{}).Error
}

func (r *canalRepo) CountVendas(ctx context.Context, userID, canalID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("user_id = ? AND canal_venda_id = ?", userID, canalID).
		Count(&total).Error
	return total, err
}
