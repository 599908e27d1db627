package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/akshaynaik00018/cpms/internal/report"
	"github.com/akshaynaik00018/cpms/internal/stats"
)

type StatsHandler struct {
	Stats *stats.Service
}

func (h StatsHandler) Report(w http.ResponseWriter, r *http.Request) {
	f := stats.Filter{
		Batch:  r.URL.Query().Get("batch"),
		Branch: r.URL.Query().Get("branch"),
	}
	rep, err := h.Stats.Report(r.Context(), f)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, rep)
}

// ReportPDF streams the placement report as a PDF download.
func (h StatsHandler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	f := stats.Filter{
		Batch:  r.URL.Query().Get("batch"),
		Branch: r.URL.Query().Get("branch"),
	}
	rep, err := h.Stats.Report(r.Context(), f)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	now := time.Now()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="placement-report-%s.pdf"`, now.Format("2006-01-02")))
	if err := report.WritePlacementPDF(w, rep, now); err != nil {
		// headers are gone; log-worthy but nothing we can send anymore
		return
	}
}
