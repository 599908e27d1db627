package intake

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "cpms.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestResolveSenderVerifiedCompany(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	co, err := store.InsertCompany(ctx, db.Pool, domain.Company{Name: "Initech", ContactEmail: "hr@initech.test"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.VerifyCompany(ctx, db.Pool, co.ID); err != nil {
		t.Fatalf("verify: %v", err)
	}

	id, ok := resolveSender(ctx, db.Pool, "HR@Initech.test", nil)
	if !ok || id != co.ID {
		t.Fatalf("resolve = %d, %v", id, ok)
	}
}

func TestResolveSenderUnverifiedRejected(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := store.InsertCompany(ctx, db.Pool, domain.Company{Name: "Shady", ContactEmail: "jobs@shady.test"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, ok := resolveSender(ctx, db.Pool, "jobs@shady.test", nil); ok {
		t.Fatal("unverified company accepted")
	}
}

func TestResolveSenderAllowlistDomain(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id, ok := resolveSender(ctx, db.Pool, "talent@trusted.example", []string{"trusted.example"})
	if !ok || id == 0 {
		t.Fatalf("resolve = %d, %v", id, ok)
	}
	co, err := store.GetCompany(ctx, db.Pool, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if co.ContactEmail != "talent@trusted.example" {
		t.Fatalf("shell company = %+v", co)
	}
}

func TestResolveSenderUnknown(t *testing.T) {
	db := testDB(t)
	if _, ok := resolveSender(context.Background(), db.Pool, "spam@nowhere.test", nil); ok {
		t.Fatal("unknown sender accepted")
	}
}

func TestDraftPostingExtractsSkills(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	co, err := store.InsertCompany(ctx, db.Pool, domain.Company{Name: "Globex", ContactEmail: "hr@globex.test"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	raw := []byte("Subject: SDE Opening\r\nFrom: hr@globex.test\r\n\r\n" +
		"We are hiring. Required: Python, Docker and SQL experience.\r\n")
	if err := draftPosting(ctx, db.Pool, co.ID, Message{Subject: "SDE Opening", Raw: raw}); err != nil {
		t.Fatalf("draft: %v", err)
	}

	postings, err := store.ListPostings(ctx, db.Pool, store.ListPostingsOpts{Status: string(domain.PostingDraft)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("postings = %d", len(postings))
	}
	p := postings[0]
	if p.Title != "SDE Opening" || p.Status != domain.PostingDraft {
		t.Fatalf("posting = %+v", p)
	}
	have := map[string]bool{}
	for _, s := range p.RequiredSkills {
		have[s] = true
	}
	for _, w := range []string{"python", "docker", "sql"} {
		if !have[w] {
			t.Errorf("skill %q not extracted: %v", w, p.RequiredSkills)
		}
	}
}

func TestBodyTextHTML(t *testing.T) {
	raw := []byte("Content-Type: text/html; charset=utf-8\r\n\r\n" +
		"<html><body><p>Hiring Go developers</p><script>x()</script></body></html>")
	got := BodyText(raw)
	if !strings.Contains(got, "Hiring Go developers") || strings.Contains(got, "x()") {
		t.Fatalf("body = %q", got)
	}
}
