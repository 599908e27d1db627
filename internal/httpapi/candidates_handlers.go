package httpapi

import (
	"database/sql"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/lifecycle"
	"github.com/akshaynaik00018/cpms/internal/predict"
	"github.com/akshaynaik00018/cpms/internal/resume"
	"github.com/akshaynaik00018/cpms/internal/stats"
	"github.com/akshaynaik00018/cpms/internal/store"
)

type CandidatesHandler struct {
	DB        *sql.DB
	Lifecycle *lifecycle.Service
	Stats     *stats.Service
}

func (h CandidatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Candidate
	if !decodeBody(w, r, &c) {
		return
	}
	if c.Email == "" || c.EnrollmentNo == "" || c.Branch == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email, enrollmentNo and branch are required")
		return
	}

	created, err := store.InsertCandidate(r.Context(), h.DB, c)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h CandidatesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	list, err := store.ListCandidates(r.Context(), h.DB, store.ListCandidatesOpts{
		Branch:          q.Get("branch"),
		Batch:           q.Get("batch"),
		PlacementStatus: q.Get("placement_status"),
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, list)
}

// ByPath dispatches /candidates/{id} and its sub-resources.
func (h CandidatesHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	id, suffix, ok := idFromPath(r.URL.Path, "/candidates/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "validation", "invalid candidate id")
		return
	}

	switch suffix {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	case "resume":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.uploadResume(w, r, id)
	case "postings":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.eligiblePostings(w, r, id)
	case "prediction":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.prediction(w, r, id)
	case "skillgap":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.skillGap(w, r, id)
	case "dashboard":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.dashboard(w, r, id)
	case "applications":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.applications(w, r, id)
	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "no such resource")
	}
}

func (h CandidatesHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := store.GetCandidate(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, c)
}

func (h CandidatesHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	var c domain.Candidate
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = id
	if err := store.UpdateCandidateProfile(r.Context(), h.DB, c); err != nil {
		WriteDomainError(w, r, err)
		return
	}
	updated, err := store.GetCandidate(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, updated)
}

func (h CandidatesHandler) uploadResume(w http.ResponseWriter, r *http.Request, id int64) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation", "multipart field 'resume' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, resume.MaxUploadBytes+1))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation", "could not read upload")
		return
	}
	if len(data) > resume.MaxUploadBytes {
		WriteError(w, r, http.StatusRequestEntityTooLarge, "validation", "resume exceeds the size limit")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	text, err := resume.ExtractText(data, ext)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation", err.Error())
		return
	}

	parsed := resume.Parse(text)
	c, err := store.GetCandidate(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	if resume.Autofill(&c, parsed) {
		if err := store.UpdateCandidateProfile(r.Context(), h.DB, c); err != nil {
			WriteDomainError(w, r, err)
			return
		}
	}
	if err := store.UpdateCandidateResume(r.Context(), h.DB, id, text, parsed); err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"parsed": parsed, "candidate": c})
}

func (h CandidatesHandler) eligiblePostings(w http.ResponseWriter, r *http.Request, id int64) {
	matches, err := h.Lifecycle.EligiblePostings(r.Context(), id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, matches)
}

func (h CandidatesHandler) prediction(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := store.GetCandidate(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, predict.Estimate(c))
}

func (h CandidatesHandler) skillGap(w http.ResponseWriter, r *http.Request, id int64) {
	gap, err := h.Stats.SkillGap(r.Context(), id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"missing":     gap.Missing,
		"matching":    gap.Matching,
		"recommended": stats.TopRecommendations(gap.Missing),
	})
}

func (h CandidatesHandler) dashboard(w http.ResponseWriter, r *http.Request, id int64) {
	matches, err := h.Lifecycle.EligiblePostings(r.Context(), id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	d, err := h.Stats.CandidateDashboard(r.Context(), id, len(matches))
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, d)
}

func (h CandidatesHandler) applications(w http.ResponseWriter, r *http.Request, id int64) {
	apps, err := store.ListApplicationsByCandidate(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, apps)
}
