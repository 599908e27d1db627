package notify

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/events"
	"github.com/akshaynaik00018/cpms/internal/store"
)

// Notifier writes a notification row, pushes an SSE event, and queues an
// email for every lifecycle event. Delivery is best effort: a failed queue
// or hub push is logged, never returned.
type Notifier struct {
	DB    *sql.DB
	Hub   *events.Hub
	Queue *MailQueue // nil when mail is disabled
}

func New(db *sql.DB, hub *events.Hub, queue *MailQueue) *Notifier {
	return &Notifier{DB: db, Hub: hub, Queue: queue}
}

func (n *Notifier) ApplicationCreated(ctx context.Context, app domain.Application, p domain.Posting, c domain.Candidate) {
	n.deliver(ctx, c, events.TypeApplicationCreated, domain.Notification{
		RecipientID: c.ID,
		Type:        "application",
		Title:       "Application submitted",
		Message:     fmt.Sprintf("You applied for %s.", p.Title),
		EntityType:  "application",
		EntityID:    app.ID,
	}, app)
}

func (n *Notifier) StatusChanged(ctx context.Context, app domain.Application, p domain.Posting, to domain.ApplicationStatus) {
	c, err := store.GetCandidate(ctx, n.DB, app.CandidateID)
	if err != nil {
		log.Printf(`level=warn msg="notify: candidate lookup failed" application=%d err=%q`, app.ID, err)
		return
	}
	n.deliver(ctx, c, events.TypeApplicationStatus, domain.Notification{
		RecipientID: c.ID,
		Type:        "status_change",
		Title:       statusTitle(to),
		Message:     fmt.Sprintf("Your application for %s is now %s.", p.Title, to),
		EntityType:  "application",
		EntityID:    app.ID,
	}, app)
}

func (n *Notifier) deliver(ctx context.Context, c domain.Candidate, eventType string, row domain.Notification, app domain.Application) {
	if _, err := store.InsertNotification(ctx, n.DB, row); err != nil {
		log.Printf(`level=warn msg="notify: insert failed" recipient=%d err=%q`, row.RecipientID, err)
	}

	if n.Hub != nil {
		n.Hub.Publish(events.MakeEvent("", eventType, map[string]any{
			"applicationId": app.ID,
			"candidateId":   c.ID,
			"status":        app.Status,
			"title":         row.Title,
		}))
	}

	if n.Queue != nil && c.Email != "" {
		err := n.Queue.Publish(ctx, MailJob{
			To:      c.Email,
			Subject: row.Title,
			Body:    row.Message,
		})
		if err != nil {
			log.Printf(`level=warn msg="notify: mail enqueue failed" recipient=%d err=%q`, c.ID, err)
		}
	}
}

func statusTitle(to domain.ApplicationStatus) string {
	switch to {
	case domain.StatusShortlisted:
		return "You have been shortlisted"
	case domain.StatusRejected:
		return "Application update"
	case domain.StatusSelected:
		return "Congratulations, you are selected"
	case domain.StatusOfferAccepted:
		return "Offer accepted"
	case domain.StatusOfferDeclined:
		return "Offer declined"
	case domain.StatusWithdrawn:
		return "Application withdrawn"
	}
	return "Application update"
}
