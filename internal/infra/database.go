package infra

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection backed by pgx and sizes its pool.
// Schema is managed by the SQL migrations in migrations/, never AutoMigrate.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// Connector hands out the process-wide database handle. The connection is
// opened on first use; a failed attempt is retried on the next call and a
// successful one is reused for the life of the process.
type Connector struct {
	dsn  string
	open func(dsn string) (*gorm.DB, error)

	mu sync.Mutex
	db *gorm.DB
}

func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn, open: NewDatabase}
}

// DB returns the shared handle, connecting if needed.
func (c *Connector) DB(ctx context.Context) (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := c.open(c.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.db = db
	return db, nil
}

// Ping checks the shared handle. It does not trigger a connection.
func (c *Connector) Ping(ctx context.Context) error {
	c.mu.Lock()
	db := c.db
	c.mu.Unlock()

	if db == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
