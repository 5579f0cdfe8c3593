package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/RestaurantBookingService/pkg/dbmetrics"
	"github.com/m04kA/RestaurantBookingService/pkg/psqlbuilder"
)

//go:embed sql/*.sql
var files embed.FS

const tableSchemaMigrations = "schema_migrations"

var (
	// ErrReadMigrations возвращается, когда не удалось прочитать встроенные файлы
	ErrReadMigrations = errors.New("migrations: failed to read migration files")

	// ErrApply возвращается, когда миграция не применилась
	ErrApply = errors.New("migrations: failed to apply migration")
)

// Migration одна миграция схемы
type Migration struct {
	Version string
	SQL     string
}

// TransactionManager менеджер транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные миграции по порядку версий
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	logger    Logger
}

// NewMigrator создает мигратор
func NewMigrator(db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) *Migrator {
	return &Migrator{db: db, txManager: txManager, logger: logger}
}

// Load возвращает встроенные миграции, отсортированные по версии
func Load() ([]Migration, error) {
	return load(files)
}

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMigrations, err)
	}
	sort.Strings(names)

	result := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadMigrations, name, err)
		}
		result = append(result, Migration{
			Version: strings.TrimSuffix(path.Base(name), ".sql"),
			SQL:     string(body),
		})
	}
	return result, nil
}

// Up применяет все еще не примененные миграции. Каждая миграция выполняется в своей транзакции
// вместе с записью в schema_migrations. Возвращает число примененных миграций
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+tableSchemaMigrations+` (
		version    VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return 0, fmt.Errorf("%w: create %s: %w", ErrApply, tableSchemaMigrations, err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	all, err := Load()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range pending(all, applied) {
		err := m.txManager.Do(ctx, func(ctx context.Context) error {
			executor := dbmetrics.GetExecutor(ctx, m.db)

			if _, err := executor.ExecContext(ctx, mig.SQL); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert(tableSchemaMigrations).
				Columns("version").
				Values(mig.Version).
				ToSql()
			if err != nil {
				return err
			}
			_, err = executor.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return count, fmt.Errorf("%w: %s: %w", ErrApply, mig.Version, err)
		}

		m.logger.Info("Applied migration %s", mig.Version)
		count++
	}

	return count, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	query, args, err := psqlbuilder.Select("version").
		From(tableSchemaMigrations).
		OrderBy("version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %w", ErrApply, err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrApply, tableSchemaMigrations, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("%w: scan version: %w", ErrApply, err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrApply, err)
	}

	return applied, nil
}

// pending миграции, которых нет среди примененных, в исходном порядке
func pending(all []Migration, applied map[string]bool) []Migration {
	result := make([]Migration, 0, len(all))
	for _, mig := range all {
		if !applied[mig.Version] {
			result = append(result, mig)
		}
	}
	return result
}
