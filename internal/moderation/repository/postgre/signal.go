package postgre

import (
	"context"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

// lowRatedThreshold is the rating at or below which a review becomes a signal.
const lowRatedThreshold = 2

// GetLowRatedReviews - Surface low-rated reviews, all time, most recent first.
func (r *implSignalRepository) GetLowRatedReviews(ctx context.Context, limit int) ([]model.LowRatedReview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, booking_id, author_id, company_id, rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE rating <= $1
		ORDER BY created_at DESC
		LIMIT $2
	`, lowRatedThreshold, limit)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetLowRatedReviews: Query failed: %v", err)
		return nil, repository.ErrSignalQueryFailed
	}
	defer rows.Close()

	var reviews []model.LowRatedReview
	for rows.Next() {
		var rv model.LowRatedReview
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.AuthorID, &rv.CompanyID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// GetRecentMessages - Surface messages in the recent window, most recent first.
func (r *implSignalRepository) GetRecentMessages(ctx context.Context, opts repository.RecentWindowOptions) ([]model.RecentMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sender_id, recipient_id, COALESCE(body, ''), sent_at
		FROM messages
		WHERE sent_at >= $1
		ORDER BY sent_at DESC
		LIMIT $2
	`, opts.Since, opts.Limit)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetRecentMessages: Query failed: %v", err)
		return nil, repository.ErrSignalQueryFailed
	}
	defer rows.Close()

	var messages []model.RecentMessage
	for rows.Next() {
		var m model.RecentMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetSecurityAuditActions - Surface security-relevant audit actions in the recent window.
func (r *implSignalRepository) GetSecurityAuditActions(ctx context.Context, opts repository.RecentWindowOptions) ([]model.SecurityAuditAction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, admin_id, action, severity, target_type, target_id, created_at
		FROM audit_logs
		WHERE category = 'SECURITY' AND created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`, opts.Since, opts.Limit)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetSecurityAuditActions: Query failed: %v", err)
		return nil, repository.ErrSignalQueryFailed
	}
	defer rows.Close()

	var actions []model.SecurityAuditAction
	for rows.Next() {
		var a model.SecurityAuditAction
		if err := rows.Scan(&a.ID, &a.AdminID, &a.Action, &a.Severity, &a.TargetType, &a.TargetID, &a.CreatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// CountReviews - Total and low-rated review counts.
func (r *implSignalRepository) CountReviews(ctx context.Context) (int, int, error) {
	var total, lowRated int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE rating <= $1)
		FROM reviews
	`, lowRatedThreshold).Scan(&total, &lowRated)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountReviews: Query failed: %v", err)
		return 0, 0, repository.ErrSignalQueryFailed
	}
	return total, lowRated, nil
}

// CountMessages - Total and recent-window message counts.
func (r *implSignalRepository) CountMessages(ctx context.Context, since time.Time) (int, int, error) {
	var total, recent int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE sent_at >= $1)
		FROM messages
	`, since).Scan(&total, &recent)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountMessages: Query failed: %v", err)
		return 0, 0, repository.ErrSignalQueryFailed
	}
	return total, recent, nil
}

// CountAuditActions - Audit-log counts: totals, recent window, open alerts, per severity.
func (r *implSignalRepository) CountAuditActions(ctx context.Context, since time.Time) (repository.AuditCounts, error) {
	counts := repository.AuditCounts{BySeverity: map[string]int{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COUNT(*) FILTER (WHERE status = 'OPEN')
		FROM audit_logs
		WHERE category = 'SECURITY'
	`, since).Scan(&counts.Total, &counts.Recent, &counts.Open)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountAuditActions: Query failed: %v", err)
		return counts, repository.ErrSignalQueryFailed
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT severity, COUNT(*)
		FROM audit_logs
		WHERE category = 'SECURITY'
		GROUP BY severity
	`)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountAuditActions: Severity query failed: %v", err)
		return counts, repository.ErrSignalQueryFailed
	}
	defer rows.Close()

	for rows.Next() {
		var severity string
		var n int
		if err := rows.Scan(&severity, &n); err != nil {
			return counts, err
		}
		counts.BySeverity[severity] = n
	}
	return counts, rows.Err()
}

// CountSuspendedCompanies - Number of currently suspended transport companies.
func (r *implSignalRepository) CountSuspendedCompanies(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM companies WHERE status = 'SUSPENDED'
	`).Scan(&n)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountSuspendedCompanies: Query failed: %v", err)
		return 0, repository.ErrSignalQueryFailed
	}
	return n, nil
}
