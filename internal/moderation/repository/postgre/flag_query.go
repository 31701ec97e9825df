package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

const selectFlagQuery = `
	SELECT id, content_id, content_type, flag_type, severity, status,
	       flagged_by, flagged_at, reviewed_by, reviewed_at,
	       reason, description, resolution_notes, evidence
	FROM content_flags`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlag(row rowScanner) (*model.ContentFlag, error) {
	var flag model.ContentFlag
	var reviewedBy, resolutionNotes sql.NullString
	var reviewedAt sql.NullTime
	var evidence []byte

	if err := row.Scan(
		&flag.ID, &flag.ContentID, &flag.ContentType, &flag.FlagType,
		&flag.Severity, &flag.Status, &flag.FlaggedBy, &flag.FlaggedAt,
		&reviewedBy, &reviewedAt, &flag.Reason, &flag.Description,
		&resolutionNotes, &evidence,
	); err != nil {
		return nil, err
	}

	flag.ReviewedBy = reviewedBy.String
	if reviewedAt.Valid {
		t := reviewedAt.Time
		flag.ReviewedAt = &t
	}
	flag.ResolutionNotes = resolutionNotes.String
	if len(evidence) > 0 {
		var ev model.Evidence
		if err := json.Unmarshal(evidence, &ev); err == nil {
			flag.Evidence = &ev
		}
	}

	return &flag, nil
}

func scanFlags(rows *sql.Rows) ([]*model.ContentFlag, error) {
	flags := make([]*model.ContentFlag, 0)
	for rows.Next() {
		flag, err := scanFlag(rows)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}
	return flags, rows.Err()
}

func buildListFlagsFilter(opts repository.ListFlagsOptions) (string, []any) {
	where := ""
	args := make([]any, 0, 4)

	appendCond := func(column, value string) {
		if value == "" {
			return
		}
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		args = append(args, value)
		where += fmt.Sprintf("%s = $%d", column, len(args))
	}

	appendCond("status", opts.Status)
	appendCond("flag_type", opts.FlagType)
	appendCond("severity", opts.Severity)
	appendCond("content_type", opts.ContentType)

	return where, args
}

func appendListFlagsPagination(query string, args []any, opts repository.ListFlagsOptions) (string, []any) {
	args = append(args, opts.Limit)
	query += fmt.Sprintf(" ORDER BY flagged_at DESC LIMIT $%d", len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	return query, args
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
