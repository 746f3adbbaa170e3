package handlers

import (
	"log/slog"

	"github.com/ElGunner79/fish-stories/internal/auth"
	"github.com/ElGunner79/fish-stories/internal/config"
	"github.com/ElGunner79/fish-stories/internal/store"
)

type Handler struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	tokens *auth.TokenService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	store *store.Store,
	tokens *auth.TokenService,
) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
		store:  store,
		tokens: tokens,
	}
}
