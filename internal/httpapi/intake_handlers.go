package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/events"
)

type IntakeHandler struct {
	DB           *sql.DB
	CfgVal       *atomic.Value // config.Config
	IntakeStatus *atomic.Value // httpapi.IntakeStatus
	Hub          *events.Hub
	RunIntake    func(ctx context.Context, db *sql.DB, cfg config.Config) error
}

func (h IntakeHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.IntakeStatus.Load().(IntakeStatus)
	writeJSON(w, st)
}

// Run triggers one inbox poll outside the schedule.
func (h IntakeHandler) Run(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	if !cfg.Intake.Enabled {
		WriteError(w, r, http.StatusConflict, "conflict", "intake is disabled in config")
		return
	}

	st := h.IntakeStatus.Load().(IntakeStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.IntakeStatus.Store(IntakeStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	go func() {
		err := h.RunIntake(context.Background(), h.DB, cfg)

		now := time.Now().Format(time.RFC3339)
		next := h.IntakeStatus.Load().(IntakeStatus)
		next.Running = false
		next.LastRunAt = now
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
			h.Hub.Publish(events.MakeEvent("", events.TypeIntakeCompleted, nil))
		}
		h.IntakeStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
