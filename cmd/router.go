package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/admin_logout"
	createBookingHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/create_booking"
	createDisabledDayHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/create_disabled_day"
	deleteBookingHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/delete_booking"
	deleteDisabledDayHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/delete_disabled_day"
	getBookingHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/get_calendar"
	listBookingsHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/list_bookings"
	listDisabledDaysHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/list_disabled_days"
	rescheduleBookingHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/m04kA/RestaurantBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/RestaurantBookingService/internal/api/middleware"
	availabilityService "github.com/m04kA/RestaurantBookingService/internal/service/availability"
	blackoutService "github.com/m04kA/RestaurantBookingService/internal/service/blackout"
	bookingsService "github.com/m04kA/RestaurantBookingService/internal/service/bookings"
	sessionService "github.com/m04kA/RestaurantBookingService/internal/service/session"
	createBookingUC "github.com/m04kA/RestaurantBookingService/internal/usecase/create_booking"
	rescheduleBookingUC "github.com/m04kA/RestaurantBookingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
)

// routerDeps зависимости для сборки HTTP роутера
type routerDeps struct {
	storage  *storage
	loc      *time.Location
	notifier createBookingUC.Notifier
	metrics  *metrics.Metrics // nil, если метрики выключены

	metricsPath       string
	adminPasswordHash string
	sessionSecret     string
	sessionTTL        time.Duration
	cookieSecure      bool

	log *logger.Logger
}

func newRouter(d routerDeps) *mux.Router {
	st := d.storage

	// Сервисы
	availabilitySvc := availabilityService.NewService(st.bookings, st.disabledDays, d.loc, d.log)
	bookingSvc := bookingsService.NewService(st.bookings, availabilitySvc, st.txManager, d.log)
	blackoutSvc := blackoutService.NewService(st.disabledDays, d.loc, d.log)
	sessionSvc := sessionService.NewService(d.adminPasswordHash, d.sessionSecret, d.sessionTTL, d.log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		st.bookings,
		availabilitySvc,
		d.notifier,
		d.metrics,
		st.txManager,
		d.log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		st.bookings,
		availabilitySvc,
		d.metrics,
		st.txManager,
		d.log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, d.log)
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, d.log)
	adminLogin := adminLoginHandler.NewHandler(sessionSvc, d.cookieSecure, d.log)
	adminLogout := adminLogoutHandler.NewHandler(d.cookieSecure)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, d.log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, d.log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, d.log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, d.log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, d.log)
	listDisabledDays := listDisabledDaysHandler.NewHandler(blackoutSvc, d.log)
	createDisabledDay := createDisabledDayHandler.NewHandler(blackoutSvc, d.log)
	deleteDisabledDay := deleteDisabledDayHandler.NewHandler(blackoutSvc, d.log)

	r := mux.NewRouter()

	if d.metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.metrics))
		r.Handle(d.metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	api.HandleFunc("/admin/session", adminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", adminLogout.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют cookie rv_session)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminSession(sessionSvc, d.log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/date", rescheduleBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Закрытые дни ---
	admin.HandleFunc("/disabled-days", listDisabledDays.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/disabled-days", createDisabledDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/disabled-days/{dayId}", deleteDisabledDay.Handle).Methods(http.MethodDelete)

	return r
}
