package repository

import (
	"context"

	"acaimanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfiguracaoRepository interface {
	FirstOrCreate(ctx context.Context, padrao *model.ConfiguracaoLoja) (*model.ConfiguracaoLoja, error)
	Find(ctx context.Context, userID uuid.UUID) (*model.ConfiguracaoLoja, error)
	Update(ctx context.Context, c *model.ConfiguracaoLoja) error
}

type configuracaoRepo struct{ db *gorm.DB }

func NewConfiguracaoRepository(db *gorm.DB) ConfiguracaoRepository { return &configuracaoRepo{db: db} }

func (r *configuracaoRepo) FirstOrCreate(ctx context.Context, padrao *model.ConfiguracaoLoja) (*model.ConfiguracaoLoja, error) {
	var c model.ConfiguracaoLoja
	err := r.db.WithContext(ctx).
		Where("user_id = ?", padrao.UserID).
		Attrs(*padrao).
		FirstOrCreate(&c).Error
	return &c, err
}

func (r *configuracaoRepo) Find(ctx context.Context, userID uuid.UUID) (*model.ConfiguracaoLoja, error) {
	var c model.ConfiguracaoLoja
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	return &c, err
}

func (r *configuracaoRepo) Update(ctx context.Context, c *model.ConfiguracaoLoja) error {
	return r.db.WithContext(ctx).Save(c).Error
}
