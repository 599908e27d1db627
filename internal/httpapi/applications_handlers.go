package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/lifecycle"
	"github.com/akshaynaik00018/cpms/internal/store"
)

type ApplicationsHandler struct {
	DB        *sql.DB
	Lifecycle *lifecycle.Service
}

type applyReq struct {
	CandidateID int64  `json:"candidateId"`
	PostingID   int64  `json:"postingId"`
	CoverLetter string `json:"coverLetter"`
}

func (h ApplicationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CandidateID <= 0 || req.PostingID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "validation", "candidateId and postingId are required")
		return
	}

	app, err := h.Lifecycle.Apply(r.Context(), req.CandidateID, req.PostingID, req.CoverLetter)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, app)
}

// ByPath dispatches /applications/{id} and its sub-resources.
func (h ApplicationsHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	id, suffix, ok := idFromPath(r.URL.Path, "/applications/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "validation", "invalid application id")
		return
	}

	switch suffix {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.get(w, r, id)
	case "status":
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.transition(w, r, id)
	case "withdraw":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.withdraw(w, r, id)
	case "rounds":
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.setRounds(w, r, id)
	case "timeline":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.timeline(w, r, id)
	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "no such resource")
	}
}

func (h ApplicationsHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	app, err := store.GetApplication(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, app)
}

type transitionReq struct {
	Status domain.ApplicationStatus `json:"status"`
	// Actor is the candidate performing offer responses; zero means
	// placement-cell staff.
	Actor int64  `json:"actor"`
	Note  string `json:"note"`
}

func (h ApplicationsHandler) transition(w http.ResponseWriter, r *http.Request, id int64) {
	var req transitionReq
	if !decodeBody(w, r, &req) {
		return
	}
	app, err := h.Lifecycle.Transition(r.Context(), id, req.Status, req.Actor, req.Note)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, app)
}

type withdrawReq struct {
	CandidateID int64 `json:"candidateId"`
}

func (h ApplicationsHandler) withdraw(w http.ResponseWriter, r *http.Request, id int64) {
	var req withdrawReq
	if !decodeBody(w, r, &req) {
		return
	}
	app, err := h.Lifecycle.Withdraw(r.Context(), id, req.CandidateID)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, app)
}

type setRoundsReq struct {
	Rounds []domain.Round `json:"rounds"`
}

func (h ApplicationsHandler) setRounds(w http.ResponseWriter, r *http.Request, id int64) {
	var req setRoundsReq
	if !decodeBody(w, r, &req) {
		return
	}
	if err := store.UpdateApplicationRounds(r.Context(), h.DB, id, req.Rounds); err != nil {
		WriteDomainError(w, r, err)
		return
	}
	app, err := store.GetApplication(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, app)
}

func (h ApplicationsHandler) timeline(w http.ResponseWriter, r *http.Request, id int64) {
	tl, err := store.ListTimeline(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, tl)
}
