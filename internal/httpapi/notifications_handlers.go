package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/akshaynaik00018/cpms/internal/store"
)

type NotificationsHandler struct {
	DB *sql.DB
}

// List serves /notifications?recipient={id}&unread=1.
func (h NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recipientID, _ := strconv.ParseInt(q.Get("recipient"), 10, 64)
	if recipientID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "validation", "recipient query parameter is required")
		return
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	list, err := store.ListNotifications(r.Context(), h.DB, recipientID, q.Get("unread") == "1", limit)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	unread, err := store.CountUnreadNotifications(r.Context(), h.DB, recipientID)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"notifications": list, "unread": unread})
}

type markReadReq struct {
	RecipientID int64 `json:"recipientId"`
	All         bool  `json:"all"`
}

// MarkRead handles POST /notifications/{id}/read, or /notifications/read
// with all=true.
func (h NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RecipientID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "validation", "recipientId is required")
		return
	}

	if req.All {
		if err := store.MarkAllNotificationsRead(r.Context(), h.DB, req.RecipientID); err != nil {
			WriteDomainError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	id, _, ok := idFromPath(r.URL.Path, "/notifications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "validation", "invalid notification id")
		return
	}
	if err := store.MarkNotificationRead(r.Context(), h.DB, id, req.RecipientID); err != nil {
		WriteDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
