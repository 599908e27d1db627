package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cpms.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCandidate(t *testing.T, db *DB, enrollment string) domain.Candidate {
	t.Helper()
	c, err := InsertCandidate(context.Background(), db.Pool, domain.Candidate{
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        enrollment + "@college.edu",
		EnrollmentNo: enrollment,
		Branch:       "CSE",
		Batch:        "2026",
		Average:      8.1,
		Skills:       []domain.Skill{{Name: "Go"}, {Name: "SQL"}},
	})
	if err != nil {
		t.Fatalf("insert candidate: %v", err)
	}
	return c
}

func seedPosting(t *testing.T, db *DB) domain.Posting {
	t.Helper()
	co, err := InsertCompany(context.Background(), db.Pool, domain.Company{Name: "Initech", ContactEmail: "hr@initech.test"})
	if err != nil {
		t.Fatalf("insert company: %v", err)
	}
	p, err := InsertPosting(context.Background(), db.Pool, domain.Posting{
		CompanyID:      co.ID,
		Title:          "Backend Engineer",
		JobType:        "full-time",
		RequiredSkills: []string{"Go", "SQL"},
		Status:         domain.PostingOpen,
	})
	if err != nil {
		t.Fatalf("insert posting: %v", err)
	}
	return p
}

func TestCandidateUniqueEnrollment(t *testing.T) {
	db := testDB(t)
	seedCandidate(t, db, "EN001")
	_, err := InsertCandidate(context.Background(), db.Pool, domain.Candidate{
		FirstName: "Dup", Email: "other@college.edu", EnrollmentNo: "EN001",
		Branch: "CSE", Batch: "2026",
	})
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestCreateApplicationDuplicate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	c := seedCandidate(t, db, "EN002")
	p := seedPosting(t, db)

	a, err := CreateApplication(ctx, db.Pool, domain.Application{PostingID: p.ID, CandidateID: c.ID})
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if a.Status != domain.StatusApplied {
		t.Fatalf("status = %q", a.Status)
	}
	if len(a.Timeline) != 1 || a.Timeline[0].Event != "applied" {
		t.Fatalf("timeline = %+v", a.Timeline)
	}

	_, err = CreateApplication(ctx, db.Pool, domain.Application{PostingID: p.ID, CandidateID: c.ID})
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("second apply: want conflict, got %v", err)
	}

	got, err := GetPosting(ctx, db.Pool, p.ID)
	if err != nil {
		t.Fatalf("get posting: %v", err)
	}
	if got.ApplicationsCount != 1 {
		t.Fatalf("applications_count = %d, want 1", got.ApplicationsCount)
	}
}

func TestUpdateApplicationStatusSideEffects(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	c := seedCandidate(t, db, "EN003")
	p := seedPosting(t, db)
	a, err := CreateApplication(ctx, db.Pool, domain.Application{PostingID: p.ID, CandidateID: c.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := UpdateApplicationStatus(ctx, db.Pool, a, domain.StatusShortlisted, "Shortlisted for interviews",
		StatusSideEffects{BumpCounter: "shortlisted_count"}); err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	a.Status = domain.StatusShortlisted

	if err := UpdateApplicationStatus(ctx, db.Pool, a, domain.StatusSelected, "Selected",
		StatusSideEffects{BumpCounter: "selected_count", PlaceCandidate: true, CompanyID: p.CompanyID, Package: 12.5}); err != nil {
		t.Fatalf("select: %v", err)
	}

	gotP, _ := GetPosting(ctx, db.Pool, p.ID)
	if gotP.ShortlistedCount != 1 || gotP.SelectedCount != 1 {
		t.Fatalf("counters = %d/%d, want 1/1", gotP.ShortlistedCount, gotP.SelectedCount)
	}

	gotC, err := GetCandidate(ctx, db.Pool, c.ID)
	if err != nil {
		t.Fatalf("get candidate: %v", err)
	}
	if gotC.PlacementStatus != domain.Placed || gotC.PlacedCompanyID != p.CompanyID || gotC.PlacementPackage != 12.5 {
		t.Fatalf("candidate placement = %q company=%d pkg=%v",
			gotC.PlacementStatus, gotC.PlacedCompanyID, gotC.PlacementPackage)
	}

	tl, err := ListTimeline(ctx, db.Pool, a.ID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(tl) != 3 || tl[2].Event != string(domain.StatusSelected) {
		t.Fatalf("timeline = %+v", tl)
	}
}

func TestUpdateApplicationStatusStaleRead(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	c := seedCandidate(t, db, "EN004")
	p := seedPosting(t, db)
	a, err := CreateApplication(ctx, db.Pool, domain.Application{PostingID: p.ID, CandidateID: c.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := UpdateApplicationStatus(ctx, db.Pool, a, domain.StatusRejected, "", StatusSideEffects{}); err != nil {
		t.Fatalf("reject: %v", err)
	}
	// a still carries the pre-reject status, so the guarded UPDATE matches
	// zero rows.
	err = UpdateApplicationStatus(ctx, db.Pool, a, domain.StatusShortlisted, "", StatusSideEffects{})
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("want conflict on stale status, got %v", err)
	}
}

func TestQueryOverallAndBranchStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	c1 := seedCandidate(t, db, "EN005")
	seedCandidate(t, db, "EN006")
	p := seedPosting(t, db)

	a, err := CreateApplication(ctx, db.Pool, domain.Application{PostingID: p.ID, CandidateID: c1.ID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := UpdateApplicationStatus(ctx, db.Pool, a, domain.StatusSelected, "",
		StatusSideEffects{BumpCounter: "selected_count", PlaceCandidate: true, CompanyID: p.CompanyID, Package: 10}); err != nil {
		t.Fatalf("select: %v", err)
	}

	s, err := QueryOverallStats(ctx, db.Pool, "", "")
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if s.TotalCandidates != 2 || s.Placed != 1 || s.PlacementRate != 50 {
		t.Fatalf("overall = %+v", s)
	}

	branches, err := QueryBranchStats(ctx, db.Pool, "", "")
	if err != nil {
		t.Fatalf("branch: %v", err)
	}
	if len(branches) != 1 || branches[0].Branch != "CSE" || branches[0].Placed != 1 {
		t.Fatalf("branches = %+v", branches)
	}

	pkg, err := QueryPackageStats(ctx, db.Pool, "", "")
	if err != nil {
		t.Fatalf("package: %v", err)
	}
	if pkg.Min != 10 || pkg.Max != 10 || pkg.Avg != 10 {
		t.Fatalf("package = %+v", pkg)
	}

	top, err := QueryTopCompanies(ctx, db.Pool, 5)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Hires != 1 {
		t.Fatalf("top = %+v", top)
	}

	filtered, err := QueryOverallStats(ctx, db.Pool, "2031", "")
	if err != nil {
		t.Fatalf("overall filtered: %v", err)
	}
	if filtered.TotalCandidates != 0 || filtered.Placed != 0 {
		t.Fatalf("batch filter ignored: %+v", filtered)
	}
}
