package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"vendora/internal/config"
)

func TestNew_TimeoutsComeFromConfig(t *testing.T) {
	cfg := config.ServerConfig{
		Port:         8181,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 7 * time.Second,
		IdleTimeout:  45 * time.Second,
	}

	srv := New(cfg, http.NewServeMux(), zap.NewNop())

	assert.Equal(t, ":8181", srv.httpServer.Addr)
	assert.Equal(t, 3*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, 45*time.Second, srv.httpServer.IdleTimeout)
}
