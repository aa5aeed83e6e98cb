// Package app wires the storage substrate, domain services, and
// controllers into one composition root for the presentation layer.
package app

import (
	"fmt"

	"golang.org/x/exp/slog"
	"golang.org/x/text/language"

	"aarnote/internal/config"
	"aarnote/internal/controller"
	"aarnote/internal/crypto/password"
	"aarnote/internal/domain/note"
	"aarnote/internal/domain/user"
	"aarnote/internal/storage"
	"aarnote/internal/storage/sqlite"
)

type App struct {
	cfg *config.Config
	log *slog.Logger
	kv  storage.KV

	Users   *user.Service
	Repo    *note.Repository
	Session *controller.Session
	Notes   *controller.Notes
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	kv, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Warn("unknown locale, using English collation", "locale", cfg.Locale)
		tag = language.English
	}

	users := user.NewService(user.NewRepository(kv), password.NewBcrypt(cfg.BcryptCost), log)
	repo := note.NewRepository(kv, log)

	a := &App{
		cfg:     cfg,
		log:     log,
		kv:      kv,
		Users:   users,
		Repo:    repo,
		Session: controller.NewSession(users, log),
		Notes:   controller.NewNotes(repo, note.NewSorter(tag), log),
	}

	// Restore the persisted session before the first command runs
	if err := a.Session.Init(); err != nil {
		kv.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Close() error {
	return a.kv.Close()
}
