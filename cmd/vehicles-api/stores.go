package main

import (
	"context"
	"fmt"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/99minutos/vehicles-api/internal/api/handler"
	"github.com/99minutos/vehicles-api/internal/core/ports"
	"github.com/99minutos/vehicles-api/internal/core/service"
	"github.com/99minutos/vehicles-api/internal/infrastructure/db/mongo"
	"github.com/99minutos/vehicles-api/internal/infrastructure/db/redis"
	"github.com/99minutos/vehicles-api/internal/infrastructure/db/sqldb"
	"github.com/99minutos/vehicles-api/internal/pkg/config"
	"github.com/99minutos/vehicles-api/pkg/logger"
)

// stores bundles the repositories for the configured backend together with
// the health checks and cleanup for every opened connection.
type stores struct {
	administrators ports.AdministratorRepository
	vehicles       ports.VehicleRepository
	cache          service.VehicleCache
	checks         map[string]handler.HealthCheck
	closers        []func(context.Context) error
}

// openStores connects to the backend selected by DB_DRIVER. When migrate is
// true the schema (or the Mongo indexes) is brought up to date.
func openStores(ctx context.Context, cfg *config.Config, migrate bool) (*stores, error) {
	s := &stores{checks: make(map[string]handler.HealthCheck)}

	if cfg.DB.Driver == config.DriverMongo {
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)
		s.checks["mongodb"] = pingMongo(client)

		if migrate {
			if err := mongo.EnsureIndexes(ctx, db); err != nil {
				s.close(ctx)
				return nil, err
			}
		}
		s.administrators = mongo.NewAdministratorRepository(db)
		s.vehicles = mongo.NewVehicleRepository(db)
	} else {
		db, err := sqldb.Open(ctx, sqldb.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return sqldb.Close(db) })
		s.checks["database"] = pingSQL(db)

		if migrate {
			if err := sqldb.Migrate(ctx, db); err != nil {
				s.close(ctx)
				return nil, err
			}
		}
		s.administrators = sqldb.NewAdministratorRepository(db)
		s.vehicles = sqldb.NewVehicleRepository(db)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			s.close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
		s.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		s.cache = redis.NewVehicleCache(rdb, cfg.Redis.CacheTTL)
	}

	return s, nil
}

func (s *stores) close(ctx context.Context) {
	log := logger.Get()
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("failed to close connection")
		}
	}
}

func pingSQL(db *gorm.DB) handler.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("sql handle: %w", err)
		}
		return sqlDB.PingContext(ctx)
	}
}

func pingMongo(client *mongodriver.Client) handler.HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}
