package shop

import (
	"database/sql"

	"go.uber.org/zap"

	"vendora/internal/shop/repository"
	"vendora/internal/shop/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLShopRepository(db)
	svc := service.NewShopsService(repo)
	return NewController(svc, logger)
}
