package admin_login

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	"github.com/m04kA/RestaurantBookingService/internal/service/session"
)

const (
	msgInvalidRequestBody = "Richiesta non valida"
	msgPasswordRequired   = "Password richiesta"
	msgWrongPassword      = "Password errata"
)

type Handler struct {
	service      SessionService
	secureCookie bool
	logger       Logger
}

func NewHandler(service SessionService, secureCookie bool, logger Logger) *Handler {
	return &Handler{
		service:      service,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Handle POST /api/v1/admin/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.service.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgPasswordRequired)

		case errors.Is(err, session.ErrUnauthorized):
			h.logger.Warn("POST /admin/session - Wrong password from %s", r.RemoteAddr)
			handlers.RespondError(w, http.StatusUnauthorized, msgWrongPassword)

		default:
			h.logger.Error("POST /admin/session - Failed to issue session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/session - Admin logged in")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{ExpiresAt: sess.ExpiresAt.Format(time.RFC3339)})
}
