package internal

import (
	"context"
	"fmt"

	"github.com/tutostrucoscode/GymMetrics/internal/config"
	"github.com/tutostrucoscode/GymMetrics/internal/db"
	"github.com/tutostrucoscode/GymMetrics/internal/docstore"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// OpenedDocStore is a document store plus what it needs at shutdown.
type OpenedDocStore struct {
	Store docstore.Store
	// Collector exports pool stats; nil unless the store is postgres.
	Collector prometheus.Collector
	Close     func()
}

// OpenDocStore opens the document store driver chosen in cfg.
func OpenDocStore(ctx context.Context, cfg *config.Config, dbPassword string, tracingEnabled bool) (*OpenedDocStore, error) {
	switch cfg.DocStoreDriver {
	case config.DocStorePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.DBHost,
			DBPort:         cfg.DBPort,
			DBName:         cfg.DBName,
			DBPassword:     dbPassword,
			TracingEnabled: tracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		store := docstore.NewPostgresStore(dbPool)
		if err := store.EnsureSchema(ctx); err != nil {
			dbPool.Close()
			return nil, err
		}

		return &OpenedDocStore{
			Store: store,
			Collector: pgxpoolprometheus.NewCollector(
				dbPool,
				map[string]string{"db_name": cfg.DBName},
			),
			Close: func() {
				log.Debugln("closing db pool ...")
				dbPool.Close() // blocking operation
				log.Debugln("db pool closed")
			},
		}, nil
	case config.DocStoreSQLite:
		store, err := docstore.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &OpenedDocStore{
			Store: store,
			Close: func() {
				if err := store.Close(); err != nil {
					log.Errorf("close sqlite store: %s", err)
				}
			},
		}, nil
	case config.DocStoreMemory:
		log.Warnln("using the in-memory document store, nothing will be persisted")
		return &OpenedDocStore{
			Store: docstore.NewMemoryStore(),
			Close: func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown doc store driver: %s", cfg.DocStoreDriver)
	}
}
