package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/stores"
	"hrms_backend/internals/stores/gormstore"
	"hrms_backend/internals/stores/memstore"
	"hrms_backend/internals/stores/mongostore"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

// OpenStore membuka Record Store sesuai STORE_DRIVER, lengkap dengan index/migrasi.
func OpenStore(ctx context.Context, cfg configs.Config) (stores.Store, error) {
	switch cfg.StoreDriver {
	case configs.DriverMongo:
		return openMongo(ctx, cfg.Mongo)
	case configs.DriverPostgres:
		return openPostgres(ctx, cfg.Postgres)
	case configs.DriverMemory:
		log.Println("[WARN] using in-memory store, data is lost on restart")
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, cfg configs.MongoConfig) (stores.Store, error) {
	log.Println("🔌 Connecting to MongoDB...")

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := ConnectMongo(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	st := mongostore.New(client.Database(cfg.Database))
	if err := st.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Printf("✅ MongoDB connected (db=%s)", cfg.Database)
	return st, nil
}

func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("hrms_lite").
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func openPostgres(ctx context.Context, cfg configs.PostgresConfig) (stores.Store, error) {
	log.Println("🔌 Connecting to PostgreSQL...")

	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	TunePool(db)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	st := gormstore.New(db)
	if err := st.Ping(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	log.Println("✅ PostgreSQL connected.")
	return st, nil
}

func ConnectDB(cfg configs.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}
