// Package db implements the entity store on top of GORM. Each entity type
// gets the same contract: get by id, list, list by foreign key where the
// domain needs it, existence by unique field, save (insert-or-replace) and
// delete by id. Foreign keys are stored by value; reads preload the
// referenced entities so callers receive resolved handles.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewRepository connects to Postgres and migrates the entity tables.
func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	gdb, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newRepository(gdb)
}

// NewSQLiteRepository opens a SQLite-backed store. Used for local runs and
// in-process integration tests; pass ":memory:" for a throwaway database.
func NewSQLiteRepository(path string) (*Repository, error) {
	gdb, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newRepository(gdb)
}

// gormConfig skips foreign key DDL on migration. Deletes do not cascade and
// a dependent row may outlive the record it points to; enforcing constraints
// at the database level would reject that. Driver errors are translated so a
// unique index violation surfaces as gorm.ErrDuplicatedKey rather than a raw
// driver error.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}
}

func newRepository(gdb *gorm.DB) (*Repository, error) {
	if err := gdb.AutoMigrate(
		&models.Industry{},
		&models.Category{},
		&models.User{},
		&models.Company{},
		&models.Contact{},
		&models.Project{},
		&models.Collaboration{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Repository{db: gdb}, nil
}

// save inserts the record, or replaces every column when the id already
// exists. Associated entities are never written through here.
func (r *Repository) save(ctx context.Context, record any) error {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateValue
		}
		return result.Error
	}
	return nil
}

func (r *Repository) deleteByID(ctx context.Context, model any, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return e.ErrNotFound
	}
	return err
}

// WithTransaction runs fn against a repository bound to a single database
// transaction.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
