package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/KonarRetronex/Customaize-GuessWho/internal/board"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/config"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/logger"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/roster"
	"github.com/KonarRetronex/Customaize-GuessWho/internal/storage"
)

// app wires the persistence service, roster store and board editor for one
// command invocation.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	db     *storage.Store
	kv     storage.KV
	roster *roster.Store
	editor *board.Editor
}

// newApp opens the persistence store and restores the roster. When the store
// cannot be opened the app falls back to memory-only state with a warning;
// the game stays playable, just not persisted.
func newApp() (*app, error) {
	log := logger.New("guesswho")

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	a := &app{cfg: cfg, log: log}

	if err := os.MkdirAll(config.GetDataDir(), 0755); err != nil {
		log.Warnf("data directory unavailable, roster will not persist: %v", err)
	} else if db, err := storage.Open(config.GetStorePath()); err != nil {
		log.Warnf("persistence store unavailable, roster will not persist: %v", err)
	} else {
		a.db = db
		a.kv = db
	}
	if a.kv == nil {
		a.kv = storage.NewMemStore()
	}

	a.roster = roster.New(a.kv, log)
	if err := a.roster.Load(); err != nil {
		log.Warnf("could not restore the saved roster: %v", err)
	}
	a.editor = board.NewEditor(a.roster, a.kv, log)
	return a, nil
}

// close flushes pending persistence writes and closes the store.
func (a *app) close() {
	a.roster.Flush()
	if a.db != nil {
		_ = a.db.Close()
	}
}
