package http

import (
	"encoding/json"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/paginator"
	"moderation-srv/pkg/util"
)

type scanContentReq struct {
	ContentID   string `json:"content_id" binding:"required"`
	Content     string `json:"content"`
	ContentType string `json:"content_type" binding:"required"`
}

func (r scanContentReq) toInput() moderation.ScanContentInput {
	return moderation.ScanContentInput{
		ContentID:   r.ContentID,
		Content:     r.Content,
		ContentType: r.ContentType,
	}
}

type evidenceReq struct {
	Screenshots []string        `json:"screenshots,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

type flagContentReq struct {
	ContentID   string       `json:"content_id" binding:"required"`
	ContentType string       `json:"content_type" binding:"required"`
	FlagType    string       `json:"flag_type" binding:"required"`
	Severity    string       `json:"severity" binding:"required"`
	Reason      string       `json:"reason"`
	Description string       `json:"description"`
	Evidence    *evidenceReq `json:"evidence,omitempty"`
}

func (r flagContentReq) toInput() moderation.FlagContentInput {
	input := moderation.FlagContentInput{
		ContentID:   r.ContentID,
		ContentType: r.ContentType,
		FlagType:    r.FlagType,
		Severity:    r.Severity,
		Reason:      r.Reason,
		Description: r.Description,
	}
	if r.Evidence != nil {
		input.Evidence = &model.Evidence{
			Screenshots: r.Evidence.Screenshots,
			Metadata:    r.Evidence.Metadata,
		}
	}
	return input
}

type actionReq struct {
	Type       string          `json:"type" binding:"required"`
	Parameters json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
}

type reviewFlagReq struct {
	FlagID   string      `json:"-"`
	Decision string      `json:"decision" binding:"required"`
	Notes    string      `json:"notes"`
	Actions  []actionReq `json:"actions,omitempty"`
}

func (r reviewFlagReq) toInput() moderation.ReviewFlagInput {
	input := moderation.ReviewFlagInput{
		FlagID:   r.FlagID,
		Decision: r.Decision,
		Notes:    r.Notes,
	}
	input.Actions = util.MapSlice(r.Actions, func(a actionReq) moderation.ActionInput {
		return moderation.ActionInput{
			Type:       a.Type,
			Parameters: a.Parameters,
		}
	})
	return input
}

type listFlagsReq struct {
	Status      string `form:"status"`
	FlagType    string `form:"flag_type"`
	Severity    string `form:"severity"`
	ContentType string `form:"content_type"`
	paginator.PaginateQuery
}

func (r listFlagsReq) toInput() moderation.GetFlaggedContentInput {
	return moderation.GetFlaggedContentInput{
		Status:      r.Status,
		FlagType:    r.FlagType,
		Severity:    r.Severity,
		ContentType: r.ContentType,
		Paginate:    r.PaginateQuery,
	}
}

type getEvidenceReq struct {
	FlagID string
}

func (r getEvidenceReq) toInput() moderation.GetEvidenceInput {
	return moderation.GetEvidenceInput{FlagID: r.FlagID}
}

type getStatsReq struct {
	Exact bool `form:"exact"`
}

func (r getStatsReq) toInput() moderation.GetStatsInput {
	return moderation.GetStatsInput{Exact: r.Exact}
}

type scanScoresResp struct {
	Toxicity      float64 `json:"toxicity"`
	Spam          float64 `json:"spam"`
	Harassment    float64 `json:"harassment"`
	Inappropriate float64 `json:"inappropriate_content"`
	OverallRisk   float64 `json:"overall_risk"`
}

type scanResp struct {
	ContentID         string         `json:"content_id"`
	Scores            scanScoresResp `json:"scores"`
	Flags             []string       `json:"flags"`
	Confidence        float64        `json:"confidence"`
	RecommendedAction string         `json:"recommended_action"`
	ScanTimestamp     string         `json:"scan_timestamp"`
	FlagID            string         `json:"flag_id,omitempty"`
}

type actionResp struct {
	Type       string      `json:"type"`
	ExecutedBy string      `json:"executed_by"`
	ExecutedAt string      `json:"executed_at"`
	Parameters interface{} `json:"parameters,omitempty" swaggertype:"object"`
	Reversible bool        `json:"reversible"`
}

type flagResp struct {
	ID              string       `json:"id"`
	ContentID       string       `json:"content_id"`
	ContentType     string       `json:"content_type"`
	FlagType        string       `json:"flag_type"`
	Severity        string       `json:"severity"`
	Status          string       `json:"status"`
	FlaggedBy       string       `json:"flagged_by"`
	FlaggedAt       string       `json:"flagged_at"`
	ReviewedBy      string       `json:"reviewed_by,omitempty"`
	ReviewedAt      *string      `json:"reviewed_at,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	Description     string       `json:"description,omitempty"`
	ResolutionNotes string       `json:"resolution_notes,omitempty"`
	Source          interface{}  `json:"source,omitempty" swaggertype:"object"`
	Actions         []actionResp `json:"actions,omitempty"`
}

type listFlagsResp struct {
	Flags     []flagResp                  `json:"flags"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type queueResp struct {
	Pending                []flagResp `json:"pending"`
	UnderReview            []flagResp `json:"under_review"`
	Escalated              []flagResp `json:"escalated"`
	Total                  int        `json:"total"`
	HighPriority           int        `json:"high_priority"`
	AvgProcessingTimeHours float64    `json:"avg_processing_time_hours"`
	GeneratedAt            string     `json:"generated_at"`
	IsFallback             bool       `json:"is_fallback,omitempty"`
}

type statsResp struct {
	TotalFlags             int            `json:"total_flags"`
	PendingFlags           int            `json:"pending_flags"`
	ResolvedThisWeek       int            `json:"resolved_this_week"`
	ApprovalRate           float64        `json:"approval_rate"`
	RejectionRate          float64        `json:"rejection_rate"`
	EscalationRate         float64        `json:"escalation_rate"`
	AvgResolutionTimeHours float64        `json:"avg_resolution_time_hours"`
	ByType                 map[string]int `json:"by_type"`
	BySeverity             map[string]int `json:"by_severity"`
	ByAction               map[string]int `json:"by_action"`
	Mode                   string         `json:"mode"`
	GeneratedAt            string         `json:"generated_at"`

	Signals    *model.SignalCounts `json:"signals,omitempty"`
	IsFallback bool                `json:"is_fallback,omitempty"`
}

type evidenceAttachmentResp struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expires_at"`
}

type evidenceResp struct {
	FlagID      string                   `json:"flag_id"`
	Attachments []evidenceAttachmentResp `json:"attachments"`
}

func (h *handler) newScanResp(o moderation.ScanOutput) scanResp {
	return scanResp{
		ContentID: o.Result.ContentID,
		Scores: scanScoresResp{
			Toxicity:      o.Result.Scores.Toxicity,
			Spam:          o.Result.Scores.Spam,
			Harassment:    o.Result.Scores.Harassment,
			Inappropriate: o.Result.Scores.Inappropriate,
			OverallRisk:   o.Result.Scores.OverallRisk,
		},
		Flags:             o.Result.Flags,
		Confidence:        o.Result.Confidence,
		RecommendedAction: o.Result.RecommendedAction,
		ScanTimestamp:     o.Result.ScanTimestamp.Format(time.RFC3339),
		FlagID:            o.FlagID,
	}
}

func (h *handler) newFlagResp(flag *model.ContentFlag) flagResp {
	resp := flagResp{
		ID:              flag.ID,
		ContentID:       flag.ContentID,
		ContentType:     flag.ContentType,
		FlagType:        flag.FlagType,
		Severity:        flag.Severity,
		Status:          flag.Status,
		FlaggedBy:       flag.FlaggedBy,
		FlaggedAt:       flag.FlaggedAt.Format(time.RFC3339),
		ReviewedBy:      flag.ReviewedBy,
		Reason:          flag.Reason,
		Description:     flag.Description,
		ResolutionNotes: flag.ResolutionNotes,
	}
	if flag.ReviewedAt != nil {
		reviewedAt := flag.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	if flag.Source != nil {
		resp.Source = flag.Source
	}
	resp.Actions = util.MapSlice(flag.Actions, func(action model.ContentAction) actionResp {
		return actionResp{
			Type:       action.Type,
			ExecutedBy: action.ExecutedBy,
			ExecutedAt: action.ExecutedAt.Format(time.RFC3339),
			Parameters: action.Parameters,
			Reversible: action.Reversible,
		}
	})
	return resp
}

func (h *handler) newListFlagsResp(o moderation.FlaggedContentOutput) listFlagsResp {
	return listFlagsResp{
		Flags:     util.MapSlice(o.Flags, h.newFlagResp),
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newQueueResp(o moderation.QueueOutput) queueResp {
	return queueResp{
		Pending:                h.newFlagList(o.Queue.Pending),
		UnderReview:            h.newFlagList(o.Queue.UnderReview),
		Escalated:              h.newFlagList(o.Queue.Escalated),
		Total:                  o.Queue.Total,
		HighPriority:           o.Queue.HighPriority,
		AvgProcessingTimeHours: o.Queue.AvgProcessingTimeHours,
		GeneratedAt:            o.Queue.GeneratedAt.Format(time.RFC3339),
		IsFallback:             o.Queue.IsFallback,
	}
}

func (h *handler) newFlagList(flags []model.ContentFlag) []flagResp {
	return util.MapSlice(flags, func(flag model.ContentFlag) flagResp {
		return h.newFlagResp(&flag)
	})
}

func (h *handler) newStatsResp(o moderation.StatsOutput) statsResp {
	return statsResp{
		TotalFlags:             o.Stats.TotalFlags,
		PendingFlags:           o.Stats.PendingFlags,
		ResolvedThisWeek:       o.Stats.ResolvedThisWeek,
		ApprovalRate:           o.Stats.ApprovalRate,
		RejectionRate:          o.Stats.RejectionRate,
		EscalationRate:         o.Stats.EscalationRate,
		AvgResolutionTimeHours: o.Stats.AvgResolutionTimeHours,
		ByType:                 o.Stats.ByType,
		BySeverity:             o.Stats.BySeverity,
		ByAction:               o.Stats.ByAction,
		Mode:                   o.Stats.Mode,
		GeneratedAt:            o.Stats.GeneratedAt.Format(time.RFC3339),
		Signals:                o.Stats.Signals,
		IsFallback:             o.Stats.IsFallback,
	}
}

func (h *handler) newEvidenceResp(o moderation.EvidenceOutput) evidenceResp {
	return evidenceResp{
		FlagID: o.FlagID,
		Attachments: util.MapSlice(o.Attachments, func(att moderation.EvidenceAttachment) evidenceAttachmentResp {
			return evidenceAttachmentResp{
				ObjectName: att.ObjectName,
				URL:        att.URL,
				ExpiresAt:  att.ExpiresAt.Format(time.RFC3339),
			}
		}),
	}
}
