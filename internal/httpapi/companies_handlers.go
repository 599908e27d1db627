package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/store"
)

type CompaniesHandler struct {
	DB *sql.DB
}

func (h CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Company
	if !decodeBody(w, r, &c) {
		return
	}
	if c.Name == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "name is required")
		return
	}

	created, err := store.InsertCompany(r.Context(), h.DB, c)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := store.ListCompanies(r.Context(), h.DB)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, list)
}

// ByPath dispatches /companies/{id} and /companies/{id}/verify.
func (h CompaniesHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	id, suffix, ok := idFromPath(r.URL.Path, "/companies/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "validation", "invalid company id")
		return
	}

	switch suffix {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c, err := store.GetCompany(r.Context(), h.DB, id)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		writeJSON(w, c)
	case "verify":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := store.VerifyCompany(r.Context(), h.DB, id); err != nil {
			WriteDomainError(w, r, err)
			return
		}
		c, err := store.GetCompany(r.Context(), h.DB, id)
		if err != nil {
			WriteDomainError(w, r, err)
			return
		}
		writeJSON(w, c)
	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "no such resource")
	}
}
