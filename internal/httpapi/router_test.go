package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/akshaynaik00018/cpms/internal/chat"
	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/events"
	"github.com/akshaynaik00018/cpms/internal/lifecycle"
	"github.com/akshaynaik00018/cpms/internal/stats"
	"github.com/akshaynaik00018/cpms/internal/store"
)

func testMux(t *testing.T) (*http.ServeMux, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "cpms.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mux := NewMux(Deps{
		DB:        db.Pool,
		Hub:       events.NewHub(),
		Relay:     chat.NewRelay(),
		Lifecycle: lifecycle.NewService(db.Pool, nil),
		Stats:     &stats.Service{DB: db.Pool, TopN: 10},
	})
	return mux, db
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestCandidateLifecycleOverHTTP(t *testing.T) {
	mux, _ := testMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/candidates", map[string]any{
		"firstName":    "Asha",
		"lastName":     "Rao",
		"email":        "asha@college.edu",
		"enrollmentNo": "EN-100",
		"branch":       "CSE",
		"batch":        "2026",
		"average":      8.4,
		"skills":       []map[string]string{{"name": "Go"}, {"name": "SQL"}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create candidate: %d %s", rec.Code, rec.Body.String())
	}
	cand := decode[domain.Candidate](t, rec)

	rec = doJSON(t, mux, http.MethodPost, "/companies", map[string]any{
		"name":         "Initech",
		"contactEmail": "hr@initech.test",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create company: %d %s", rec.Code, rec.Body.String())
	}
	co := decode[domain.Company](t, rec)

	rec = doJSON(t, mux, http.MethodPost, "/postings", map[string]any{
		"companyId":      co.ID,
		"title":          "Backend Engineer",
		"jobType":        "full-time",
		"requiredSkills": []string{"Go", "SQL"},
		"packageMax":     12.0,
		"status":         "open",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create posting: %d %s", rec.Code, rec.Body.String())
	}
	posting := decode[domain.Posting](t, rec)

	rec = doJSON(t, mux, http.MethodPost, "/applications", map[string]any{
		"candidateId": cand.ID,
		"postingId":   posting.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply: %d %s", rec.Code, rec.Body.String())
	}
	app := decode[domain.Application](t, rec)
	if app.Fit.SkillMatch != 100 {
		t.Fatalf("fit snapshot missing: %+v", app.Fit)
	}

	// duplicate apply conflicts
	rec = doJSON(t, mux, http.MethodPost, "/applications", map[string]any{
		"candidateId": cand.ID,
		"postingId":   posting.ID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate apply = %d, want 409", rec.Code)
	}

	// shortlist then select by the placement cell (actor 0)
	appPath := fmt.Sprintf("/applications/%d/status", app.ID)
	rec = doJSON(t, mux, http.MethodPut, appPath, map[string]any{"status": "shortlisted"})
	if rec.Code != http.StatusOK {
		t.Fatalf("shortlist: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, mux, http.MethodPut, appPath, map[string]any{"status": "selected"})
	if rec.Code != http.StatusOK {
		t.Fatalf("select: %d %s", rec.Code, rec.Body.String())
	}

	// skipping stages is rejected with the transition code
	rec = doJSON(t, mux, http.MethodPut, appPath, map[string]any{"status": "shortlisted"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("illegal transition = %d, want 409", rec.Code)
	}
	e := decode[APIError](t, rec)
	if e.Error.Code != "invalid_transition" {
		t.Fatalf("code = %q", e.Error.Code)
	}

	// stats reflect the placement
	rec = doJSON(t, mux, http.MethodGet, "/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: %d", rec.Code)
	}
	rep := decode[stats.Report](t, rec)
	if rep.Overall.Placed != 1 || rep.Overall.TotalCandidates != 1 {
		t.Fatalf("overall = %+v", rep.Overall)
	}
}

func TestErrorMapping(t *testing.T) {
	mux, _ := testMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/candidates/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing candidate = %d, want 404", rec.Code)
	}
	e := decode[APIError](t, rec)
	if e.Error.Code != "not_found" {
		t.Fatalf("code = %q", e.Error.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/candidates", map[string]any{"firstName": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid candidate = %d, want 400", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
}

func TestIneligibleApplyReturns403(t *testing.T) {
	mux, db := testMux(t)

	cand, err := store.InsertCandidate(t.Context(), db.Pool, domain.Candidate{
		FirstName: "Ravi", LastName: "K", Email: "ravi@college.edu",
		EnrollmentNo: "EN-200", Branch: "ME", Batch: "2026", Average: 6.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	co, err := store.InsertCompany(t.Context(), db.Pool, domain.Company{Name: "Quant Corp", ContactEmail: "q@corp.test"})
	if err != nil {
		t.Fatal(err)
	}
	posting, err := store.InsertPosting(t.Context(), db.Pool, domain.Posting{
		CompanyID: co.ID, Title: "Quant Dev", JobType: "full-time",
		Criteria: domain.Criteria{MinAverage: 9.0},
		Status:   domain.PostingOpen,
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, mux, http.MethodPost, "/applications", map[string]any{
		"candidateId": cand.ID,
		"postingId":   posting.ID,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("ineligible apply = %d %s, want 403", rec.Code, rec.Body.String())
	}
	e := decode[APIError](t, rec)
	if e.Error.Code != "ineligible" {
		t.Fatalf("code = %q", e.Error.Code)
	}
}
