package infra

import (
	"fmt"

	"acaimanager/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (referential actions on the snapshot tables).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Also used by integration tests
// against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.ConfiguracaoLoja{},
		&model.Produto{},
		&model.Composicao{},
		&model.ItemCusto{},
		&model.Fornecedor{},
		&model.CanalVenda{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.TipoDespesa{},
		&model.Despesa{},
		&model.FechamentoMensal{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Sale lines outlive the catalog row they snapshot: deleting a product
		// nulls the reference instead of cascading into history.
		{"itens_venda.produto_id ON DELETE SET NULL", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_itens_venda_produto') THEN
    ALTER TABLE itens_venda
      ADD CONSTRAINT fk_itens_venda_produto
      FOREIGN KEY (produto_id) REFERENCES produtos(id) ON DELETE SET NULL;
  END IF;
END $$`},
		// Suppliers referenced by cost items must not disappear underneath them.
		{"itens_custo.fornecedor_id ON DELETE RESTRICT", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_itens_custo_fornecedor') THEN
    ALTER TABLE itens_custo
      ADD CONSTRAINT fk_itens_custo_fornecedor
      FOREIGN KEY (fornecedor_id) REFERENCES fornecedores(id) ON DELETE RESTRICT;
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
