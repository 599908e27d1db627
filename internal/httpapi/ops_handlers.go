package httpapi

import (
	"database/sql"
	"net"
	"net/http"
)

// OpsHandler exposes maintenance endpoints used by local tooling.
type OpsHandler struct {
	DB *sql.DB
}

func (h OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok": false,
			"db": err.Error(),
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Checkpoint forces a WAL checkpoint. Local callers only.
func (h OpsHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "127.0.0.1" && host != "::1" && host != "localhost" {
		WriteError(w, r, http.StatusForbidden, "forbidden", "local access only")
		return
	}

	if _, err := h.DB.Exec(`PRAGMA wal_checkpoint(FULL);`); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
