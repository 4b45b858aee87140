package transport

import (
	"net/http"
	"strconv"

	"grafica-be/internal/utils"

	"github.com/gorilla/mux"
)

// ListNotifications returns the feed for the caller's role.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	role := utils.GetUserRoleFromContext(r.Context())

	list, err := h.Notifications.List(r.Context(), role)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toNotificationPayloads(list), http.StatusOK)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSONError(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.Notifications.MarkRead(r.Context(), uint(id)); err != nil {
		utils.WriteJSONError(w, "notification not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
