package disabledday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/pkg/dbmetrics"
	"github.com/m04kA/RestaurantBookingService/pkg/psqlbuilder"
)

const tableDisabledDays = "disabled_days"

// Repository репозиторий закрытых для бронирования дней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет закрытый день. Колонка day имеет тип DATE, передаем ключ YYYY-MM-DD,
// чтобы часовой пояс сессии БД не сдвигал день
func (r *Repository) Create(ctx context.Context, day *domain.DisabledDay) (*domain.DisabledDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if day.ID == "" {
		day.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableDisabledDays).
		Columns("id", "day", "reason").
		Values(day.ID, domain.DayKey(day.Day), day.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	day.CreatedAt = createdAt.Time

	return day, nil
}

// List возвращает все закрытые дни по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.DisabledDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day", "reason", "created_at").
		From(tableDisabledDays).
		OrderBy("day ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.DisabledDay, 0)
	for rows.Next() {
		var d domain.DisabledDay
		var createdAt sql.NullTime
		if err := rows.Scan(&d.ID, &d.Day, &d.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		d.CreatedAt = createdAt.Time
		days = append(days, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return days, nil
}

// ExistsOnDay проверяет, закрыт ли календарный день
func (r *Repository) ExistsOnDay(ctx context.Context, day time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableDisabledDays).
		Where(squirrel.Eq{"day": domain.DayKey(day)}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsOnDay - build select query: %w", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsOnDay - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Delete удаляет закрытый день по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableDisabledDays).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDisabledDayNotFound
	}

	return nil
}
