package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/RestaurantBookingService/internal/config"
	"github.com/m04kA/RestaurantBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	disabledDayRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/disabledday"
	"github.com/m04kA/RestaurantBookingService/internal/infra/storage/memory"
	"github.com/m04kA/RestaurantBookingService/pkg/dbmetrics"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
	"github.com/m04kA/RestaurantBookingService/pkg/txmanager"
)

type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindFirst(ctx context.Context, filter domain.BookingsFilter) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	UpdateDate(ctx context.Context, id string, date, day time.Time) error
	Delete(ctx context.Context, id string) error
}

type disabledDayStore interface {
	Create(ctx context.Context, day *domain.DisabledDay) (*domain.DisabledDay, error)
	List(ctx context.Context) ([]*domain.DisabledDay, error)
	ExistsOnDay(ctx context.Context, day time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории и менеджер транзакций выбранного драйвера
type storage struct {
	bookings     bookingStore
	disabledDays disabledDayStore
	txManager    transactionManager
	close        func()
}

func newMemoryStorage() *storage {
	store := memory.NewStore()
	return &storage{
		bookings:     store.Bookings(),
		disabledDays: store.DisabledDays(),
		txManager:    store.TxManager(),
		close:        func() {},
	}
}

// openPostgres открывает пул соединений и оборачивает его метриками
// stopCh останавливает сбор статистики пула
func openPostgres(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*dbmetrics.DB, func(), error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Connected to database %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database: %v", err)
		}
	}

	return dbmetrics.WrapWithDefault(db, m, stopCh), closeFn, nil
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		return newMemoryStorage(), nil
	}

	db, closeFn, err := openPostgres(ctx, cfg, m, stopCh, log)
	if err != nil {
		return nil, err
	}

	return &storage{
		bookings:     bookingRepo.NewRepository(db),
		disabledDays: disabledDayRepo.NewRepository(db),
		txManager:    txmanager.NewTransactionManager(db),
		close:        closeFn,
	}, nil
}
