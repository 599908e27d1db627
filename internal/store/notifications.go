package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func InsertNotification(ctx context.Context, db *sql.DB, n domain.Notification) (int64, error) {
	now := time.Now()
	res, err := db.ExecContext(ctx, `
INSERT INTO notifications (recipient_id, type, title, message, entity_type, entity_id, read, created_at)
VALUES (?,?,?,?,?,?,0,?);`,
		n.RecipientID, n.Type, n.Title, n.Message, n.EntityType, n.EntityID, fmtTime(now))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func ListNotifications(ctx context.Context, db *sql.DB, recipientID int64, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := `
SELECT id, recipient_id, type, title, message, entity_type, entity_id, read, created_at
FROM notifications WHERE recipient_id = ?`
	if unreadOnly {
		q += ` AND read = 0`
	}
	q += ` ORDER BY id DESC LIMIT ?;`

	rows, err := db.QueryContext(ctx, q, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var read int
		var createdAt string
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Message,
			&n.EntityType, &n.EntityID, &read, &createdAt); err != nil {
			return nil, err
		}
		n.Read = read != 0
		n.CreatedAt = parseTime(createdAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

func CountUnreadNotifications(ctx context.Context, db *sql.DB, recipientID int64) (int, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = ? AND read = 0;`, recipientID).Scan(&n)
	return n, err
}

func MarkNotificationRead(ctx context.Context, db *sql.DB, id, recipientID int64) error {
	res, err := db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND recipient_id = ?;`, id, recipientID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "notification not found")
	}
	return nil
}

func MarkAllNotificationsRead(ctx context.Context, db *sql.DB, recipientID int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE recipient_id = ? AND read = 0;`, recipientID)
	return err
}
