package withdrawal

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	shoprepo "vendora/internal/shop/repository"
	"vendora/internal/withdrawal/repository"
	"vendora/internal/withdrawal/service"
)

const settleTxTimeout = 5 * time.Second

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLWithdrawalRepository(db)
	shops := shoprepo.NewMySQLShopRepository(db)
	svc := service.NewWithdrawalService(db, repo, shops, logger, settleTxTimeout)
	return NewController(svc, logger)
}
