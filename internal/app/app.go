// Package app es la costura de composición: config → logger → adaptador de
// storage → façade. La capa de presentación (fuera de este módulo) arma un
// App y consume DataService y autosave.
package app

import (
	"fmt"

	"pet-care-guides/internal/adapters/storage/memory"
	"pet-care-guides/internal/adapters/storage/postgres"
	"pet-care-guides/internal/adapters/storage/sqlite"
	"pet-care-guides/internal/dataservice"
	"pet-care-guides/internal/platform/config"
	"pet-care-guides/internal/platform/logger"
	"pet-care-guides/internal/ports/storage"
)

type App struct {
	Config config.Config
	Log    logger.Logger
	Store  storage.Store
	Data   dataservice.DataService

	closer func() error
}

func New(cfg config.Config) (*App, error) {
	log := logger.New("pet-care-guides",
		logger.ParseLevel(cfg.LogLevel),
		logger.ParseFormat(cfg.LogFormat),
	)

	store, closer, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("data layer ready", "driver", string(cfg.StorageDriver))

	return &App{
		Config: cfg,
		Log:    log,
		Store:  store,
		Data:   dataservice.NewService(store, log),
		closer: closer,
	}, nil
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func newStore(cfg config.Config) (storage.Store, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewStore(), nil, nil
	case config.DriverSQLite, "":
		st, err := sqlite.NewStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	case config.DriverPostgres:
		st, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
