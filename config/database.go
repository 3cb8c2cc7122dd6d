package config

import (
	"context"
	"fmt"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/repository/gormrepo"
	"github.com/mikosha12/Hulu-beand-mern-b/repository/mongorepo"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func postgresDSN(cfg DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// OpenGorm connects the relational backend named by cfg.Driver
func OpenGorm(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(postgresDSN(cfg))
	case "sqlite":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = cfg.Name + ".db"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if cfg.AutoMigrate {
		if err := gormrepo.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, nil
}

// ConnectMongo dials and pings the document backend
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}
	return client, nil
}

// OpenStore builds the repositories of the configured backend. The returned
// func releases the underlying connections.
func OpenStore(ctx context.Context, cfg *Config) (*repository.Store, func(), error) {
	if cfg.Database.Driver == "mongo" {
		client, err := ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		return mongorepo.NewStore(db), func() { client.Disconnect(context.Background()) }, nil
	}

	db, err := OpenGorm(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return gormrepo.NewStore(db), closeFn, nil
}
