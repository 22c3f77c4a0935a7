package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"vendora/internal/catalog/repository"
	"vendora/internal/catalog/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	products := service.NewProductsService(repository.NewMySQLProductRepository(db))
	taxonomy := service.NewTaxonomyService(
		repository.NewMySQLCategoryRepository(db),
		repository.NewMySQLTagRepository(db),
		repository.NewMySQLBrandRepository(db),
		repository.NewMySQLAttributeRepository(db),
	)
	return NewController(products, taxonomy, logger)
}
