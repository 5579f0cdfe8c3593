package admin_logout

import (
	"net/http"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	"github.com/m04kA/RestaurantBookingService/internal/service/session"
)

type Handler struct {
	secureCookie bool
}

func NewHandler(secureCookie bool) *Handler {
	return &Handler{secureCookie: secureCookie}
}

// Handle DELETE /api/v1/admin/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
