package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/events"
	"github.com/akshaynaik00018/cpms/internal/store"
)

type PostingsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h PostingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Posting
	if !decodeBody(w, r, &p) {
		return
	}
	if p.CompanyID <= 0 || p.Title == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "companyId and title are required")
		return
	}
	if _, err := store.GetCompany(r.Context(), h.DB, p.CompanyID); err != nil {
		WriteDomainError(w, r, err)
		return
	}

	created, err := store.InsertPosting(r.Context(), h.DB, p)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	if created.Status == domain.PostingOpen {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypePostingOpened, map[string]any{
			"id": created.ID, "title": created.Title,
		}))
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h PostingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	companyID, _ := strconv.ParseInt(q.Get("company"), 10, 64)
	limit, _ := strconv.Atoi(q.Get("limit"))

	list, err := store.ListPostings(r.Context(), h.DB, store.ListPostingsOpts{
		Status:    q.Get("status"),
		CompanyID: companyID,
		Sort:      q.Get("sort"),
		Limit:     limit,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, list)
}

// ByPath dispatches /postings/{id} and its sub-resources.
func (h PostingsHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	id, suffix, ok := idFromPath(r.URL.Path, "/postings/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "validation", "invalid posting id")
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
		h.setStatus(w, r, id)
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

func (h PostingsHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	p, err := store.GetPosting(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, p)
}

type setPostingStatusReq struct {
	Status domain.PostingStatus `json:"status"`
}

func (h PostingsHandler) setStatus(w http.ResponseWriter, r *http.Request, id int64) {
	var req setPostingStatusReq
	if !decodeBody(w, r, &req) {
		return
	}
	switch req.Status {
	case domain.PostingDraft, domain.PostingOpen, domain.PostingClosed, domain.PostingCancelled:
	default:
		WriteError(w, r, http.StatusBadRequest, "validation", "unknown posting status")
		return
	}

	if err := store.UpdatePostingStatus(r.Context(), h.DB, id, req.Status); err != nil {
		WriteDomainError(w, r, err)
		return
	}

	if req.Status == domain.PostingOpen {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypePostingOpened, map[string]any{"id": id}))
	}
	p, err := store.GetPosting(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h PostingsHandler) applications(w http.ResponseWriter, r *http.Request, id int64) {
	apps, err := store.ListApplicationsByPosting(r.Context(), h.DB, id)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, apps)
}
