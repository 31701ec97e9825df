package postgre

import (
	"context"
	"database/sql"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

// CreateFlag - Insert a new content flag record.
func (r *implFlagRepository) CreateFlag(ctx context.Context, opts repository.CreateFlagOptions) (*model.ContentFlag, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO content_flags
			(id, content_id, content_type, flag_type, severity, status,
			 flagged_by, flagged_at, reason, description, evidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8, $9, $10)
	`, opts.ID, opts.ContentID, opts.ContentType, opts.FlagType, opts.Severity,
		opts.Status, opts.FlaggedBy, opts.Reason, opts.Description, nullableBytes(opts.Evidence))
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CreateFlag: Failed to insert flag: %v", err)
		return nil, repository.ErrFlagCreateFailed
	}

	return r.GetFlagByID(ctx, opts.ID)
}

// GetFlagByID - Get a flag with its action log by primary key.
func (r *implFlagRepository) GetFlagByID(ctx context.Context, id string) (*model.ContentFlag, error) {
	row := r.db.QueryRowContext(ctx, selectFlagQuery+` WHERE id = $1`, id)

	flag, err := scanFlag(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrFlagNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetFlagByID: Failed to get flag: %v", err)
		return nil, err
	}

	actions, err := r.getActions(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetFlagByID: Failed to get actions: %v", err)
		return nil, err
	}
	flag.Actions = actions

	return flag, nil
}

// ListFlags - List flags with AND-combined filters and pagination.
func (r *implFlagRepository) ListFlags(ctx context.Context, opts repository.ListFlagsOptions) ([]*model.ContentFlag, int64, error) {
	where, args := buildListFlagsFilter(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_flags`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListFlags: Failed to count flags: %v", err)
		return nil, 0, err
	}

	query, args := appendListFlagsPagination(selectFlagQuery+where, args, opts)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListFlags: Failed to list flags: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	flags, err := scanFlags(rows)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListFlags: Failed to scan flags: %v", err)
		return nil, 0, err
	}

	return flags, total, nil
}

// ListOpenFlags - List non-terminal flags, most recent first.
func (r *implFlagRepository) ListOpenFlags(ctx context.Context, limit int) ([]*model.ContentFlag, error) {
	rows, err := r.db.QueryContext(ctx, selectFlagQuery+`
		WHERE status IN ($1, $2, $3)
		ORDER BY flagged_at DESC
		LIMIT $4
	`, model.FlagStatusPending, model.FlagStatusUnderReview, model.FlagStatusEscalated, limit)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListOpenFlags: Failed to list flags: %v", err)
		return nil, err
	}
	defer rows.Close()

	return scanFlags(rows)
}

// UpdateReview - Apply a review transition as a compare-and-set on the expected status.
func (r *implFlagRepository) UpdateReview(ctx context.Context, opts repository.UpdateReviewOptions) (*model.ContentFlag, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE content_flags
		SET status = $1, reviewed_by = $2, reviewed_at = $3, resolution_notes = $4
		WHERE id = $5 AND status = $6
	`, opts.NewStatus, opts.ReviewedBy, opts.ReviewedAt, opts.ResolutionNotes,
		opts.FlagID, opts.ExpectedStatus)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.UpdateReview: Failed to update flag: %v", err)
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Either the flag does not exist or a concurrent reviewer moved it first.
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM content_flags WHERE id = $1)`, opts.FlagID).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, repository.ErrFlagNotFound
		}
		return nil, repository.ErrFlagUpdateConflict
	}

	return r.GetFlagByID(ctx, opts.FlagID)
}

// AppendAction - Append one enforcement action to a flag's action log.
func (r *implFlagRepository) AppendAction(ctx context.Context, opts repository.AppendActionOptions) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO content_actions (flag_id, action_type, executed_by, executed_at, parameters, reversible)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, opts.FlagID, opts.Type, opts.ExecutedBy, opts.ExecutedAt, nullableBytes(opts.Parameters), opts.Reversible)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.AppendAction: Failed to insert action: %v", err)
		return repository.ErrActionAppendFailed
	}
	return nil
}

// ExactCounts - Count the flag population directly for exact statistics mode.
func (r *implFlagRepository) ExactCounts(ctx context.Context, weekStart time.Time) (repository.ExactCounts, error) {
	counts := repository.ExactCounts{
		ByStatus:   map[string]int{},
		ByType:     map[string]int{},
		BySeverity: map[string]int{},
		ByAction:   map[string]int{},
	}

	if err := r.countGrouped(ctx, `SELECT status, COUNT(*) FROM content_flags GROUP BY status`, counts.ByStatus); err != nil {
		return counts, err
	}
	if err := r.countGrouped(ctx, `SELECT flag_type, COUNT(*) FROM content_flags GROUP BY flag_type`, counts.ByType); err != nil {
		return counts, err
	}
	if err := r.countGrouped(ctx, `SELECT severity, COUNT(*) FROM content_flags GROUP BY severity`, counts.BySeverity); err != nil {
		return counts, err
	}
	if err := r.countGrouped(ctx, `SELECT action_type, COUNT(*) FROM content_actions GROUP BY action_type`, counts.ByAction); err != nil {
		return counts, err
	}

	for _, n := range counts.ByStatus {
		counts.Total += n
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(EXTRACT(EPOCH FROM reviewed_at - flagged_at)) / 3600, 0)
		FROM content_flags
		WHERE status IN ($1, $2) AND reviewed_at >= $3
	`, model.FlagStatusApproved, model.FlagStatusRejected, weekStart).
		Scan(&counts.ResolvedThisWeek, &counts.AvgResolutionHours)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ExactCounts: Failed to count resolutions: %v", err)
		return counts, err
	}

	return counts, nil
}

func (r *implFlagRepository) countGrouped(ctx context.Context, query string, dest map[string]int) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.countGrouped: Query failed: %v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dest[key] = n
	}
	return rows.Err()
}

func (r *implFlagRepository) getActions(ctx context.Context, flagID string) ([]model.ContentAction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT action_type, executed_by, executed_at, parameters, reversible
		FROM content_actions
		WHERE flag_id = $1
		ORDER BY executed_at ASC, id ASC
	`, flagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []model.ContentAction
	for rows.Next() {
		var a model.ContentAction
		var params []byte
		if err := rows.Scan(&a.Type, &a.ExecutedBy, &a.ExecutedAt, &params, &a.Reversible); err != nil {
			return nil, err
		}
		if decoded, err := model.DecodeActionParams(a.Type, params); err == nil {
			a.Parameters = decoded
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
