package user

import (
	"database/sql"

	"go.uber.org/zap"

	"vendora/internal/user/repository"
	"vendora/internal/user/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLUserRepository(db)
	svc := service.NewUsersService(repo)
	return NewController(svc, logger)
}
