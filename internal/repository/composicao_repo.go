package repository

import (
	"context"

	"acaimanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComposicaoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Composicao) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Composicao, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Composicao, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Composicao) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error

	// Cost item children — always mutated inside the parent's transaction.
	CreateItem(ctx context.Context, tx *gorm.DB, item *model.ItemCusto) error
	UpdateItem(ctx context.Context, tx *gorm.DB, item *model.ItemCusto) error
	DeleteItens(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	DeleteItensByComposicao(ctx context.Context, tx *gorm.DB, composicaoID uuid.UUID) error

	CountItensByFornecedor(ctx context.Context, userID, fornecedorID uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type composicaoRepo struct{ db *gorm.DB }

func NewComposicaoRepository(db *gorm.DB) ComposicaoRepository { return &composicaoRepo{db: db} }

func (r *composicaoRepo) DB() *gorm.DB { return r.db }

func (r *composicaoRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Composicao) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *composicaoRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Composicao, error) {
	var c model.Composicao
	err := r.db.WithContext(ctx).
		Preload("Itens.Fornecedor").
		Where("user_id = ? AND id = ?", userID, id).
		First(&c).Error
	return &c, err
}

func (r *composicaoRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Composicao, error) {
	var composicoes []model.Composicao
	err := r.db.WithContext(ctx).
		Preload("Itens.Fornecedor").
		Where("user_id = ?", userID).
		Order("nome ASC").
		Find(&composicoes).Error
	return composicoes, err
}

func (r *composicaoRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Composicao) error {
	return tx.WithContext(ctx).Omit("Itens").Save(c).Error
}

func (r *composicaoRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Composicao{}).Error
}

func (r *composicaoRepo) CreateItem(ctx context.Context, tx *gorm.DB, item *model.ItemCusto) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *composicaoRepo) UpdateItem(ctx context.Context, tx *gorm.DB, item *model.ItemCusto) error {
	return tx.WithContext(ctx).Save(item).Error
}

func (r *composicaoRepo) DeleteItens(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ItemCusto{}).Error
}

func (r *composicaoRepo) DeleteItensByComposicao(ctx context.Context, tx *gorm.DB, composicaoID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("composicao_id = ?", composicaoID).
		Delete(&model.ItemCusto{}).Error
}

func (r *composicaoRepo) CountItensByFornecedor(ctx context.Context, userID, fornecedorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ItemCusto{}).
		Joins("JOIN composicoes ON composicoes.id = itens_custo.composicao_id").
		Where("composicoes.user_id = ? AND itens_custo.fornecedor_id = ?", userID, fornecedorID).
		Count(&total).Error
	return total, err
}
