package board

import (
	"go.uber.org/zap"

	"vendora/internal/config"
	"vendora/internal/orderclient"
)

// NewModule wires the board against the remote order service. The caller
// runs Service.Run alongside the HTTP server.
func NewModule(cfg config.OrdersConfig, logger *zap.Logger) (*Controller, *Service) {
	client := orderclient.New(cfg.BaseURL, cfg.RequestTimeout, logger)
	svc := NewService(client, cfg.RefreshInterval, logger)
	return NewController(svc, logger), svc
}
