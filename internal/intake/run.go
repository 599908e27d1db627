package intake

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-imap/v2"

	"github.com/akshaynaik00018/cpms/internal/config"
	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/resume"
	"github.com/akshaynaik00018/cpms/internal/store"
)

// RunOnce polls the placement-cell inbox and drafts a posting for every
// unseen mail whose sender maps to a registered company or the configured
// allowlist. Drafts stay invisible to candidates until staff review and
// open them.
func RunOnce(ctx context.Context, db *sql.DB, cfg config.Config, password string, allowlist []string) error {
	addr := fmt.Sprintf("%s:%d", cfg.Intake.IMAPHost, cfg.Intake.IMAPPort)
	c, err := Dial(ctx, addr, cfg.Intake.Username, password)
	if err != nil {
		return err
	}
	defer LogoutAndClose(c)

	if err := SelectMailbox(c, cfg.Intake.Mailbox); err != nil {
		return err
	}
	msgs, err := FetchUnseen(ctx, c, 20)
	if err != nil {
		return err
	}

	var processed []imap.UID
	for _, m := range msgs {
		companyID, ok := resolveSender(ctx, db, m.From, allowlist)
		if !ok {
			log.Printf(`level=info msg="intake: sender not registered" from=%q`, m.From)
			continue
		}
		if err := draftPosting(ctx, db, companyID, m); err != nil {
			log.Printf(`level=warn msg="intake: draft failed" from=%q err=%q`, m.From, err)
			continue
		}
		processed = append(processed, m.UID)
	}

	if err := MarkSeen(c, processed); err != nil {
		return err
	}
	if len(processed) > 0 {
		log.Printf(`level=info msg="intake: drafted postings" count=%d`, len(processed))
	}
	return nil
}

// resolveSender maps a sender address to a verified company row. The
// allowlist carries exact addresses or bare domains.
func resolveSender(ctx context.Context, db *sql.DB, from string, allowlist []string) (int64, bool) {
	from = strings.ToLower(strings.TrimSpace(from))
	if from == "" {
		return 0, false
	}

	if co, err := store.FindCompanyByEmail(ctx, db, from); err == nil && co.Verified {
		return co.ID, true
	}

	domainPart := from
	if i := strings.LastIndex(from, "@"); i >= 0 {
		domainPart = from[i+1:]
	}
	for _, allow := range allowlist {
		if allow == from || allow == domainPart {
			// trusted sender without a company row yet; register a shell
			co, err := store.InsertCompany(ctx, db, domain.Company{
				Name:         domainPart,
				ContactEmail: from,
			})
			if err != nil {
				return 0, false
			}
			return co.ID, true
		}
	}
	return 0, false
}

func draftPosting(ctx context.Context, db *sql.DB, companyID int64, m Message) error {
	title := strings.TrimSpace(m.Subject)
	if title == "" {
		title = "Untitled posting"
	}
	body := BodyText(m.Raw)

	// same keyword dictionary the resume parser uses
	parsed := resume.Parse(body)

	_, err := store.InsertPosting(ctx, db, domain.Posting{
		CompanyID:      companyID,
		Title:          title,
		Description:    body,
		JobType:        "full-time",
		RequiredSkills: parsed.Skills,
		Status:         domain.PostingDraft,
	})
	return err
}

func stripHTML(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}
