package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

type createFlagParams struct {
	ContentID   string
	ContentType string
	FlagType    string
	Severity    string
	Reason      string
	Description string
	FlaggedBy   string
	Evidence    []byte
}

// FlagContent creates a new flag for a piece of content. The same content may
// be flagged repeatedly; each report is an independent record. Critical
// severity enters the lifecycle directly at ESCALATED.
func (uc *implUseCase) FlagContent(ctx context.Context, sc model.Scope, input moderation.FlagContentInput) (moderation.FlagOutput, error) {
	if input.ContentID == "" {
		return moderation.FlagOutput{}, moderation.ErrContentIDRequired
	}
	if !model.ValidContentType(input.ContentType) {
		return moderation.FlagOutput{}, moderation.ErrInvalidContentType
	}
	if !model.ValidFlagType(input.FlagType) {
		return moderation.FlagOutput{}, moderation.ErrInvalidFlagType
	}
	if !model.ValidSeverity(input.Severity) {
		return moderation.FlagOutput{}, moderation.ErrInvalidSeverity
	}

	flaggedBy := input.FlaggedBy
	if flaggedBy == "" {
		flaggedBy = sc.UserID
	}

	var evidence []byte
	if input.Evidence != nil {
		var err error
		if evidence, err = json.Marshal(input.Evidence); err != nil {
			uc.l.Errorf(ctx, "moderation.usecase.FlagContent: Failed to marshal evidence: %v", err)
			return moderation.FlagOutput{}, moderation.ErrFlagCreateFailed
		}
	}

	flag, err := uc.createFlag(ctx, createFlagParams{
		ContentID:   input.ContentID,
		ContentType: input.ContentType,
		FlagType:    input.FlagType,
		Severity:    input.Severity,
		Reason:      input.Reason,
		Description: input.Description,
		FlaggedBy:   flaggedBy,
		Evidence:    evidence,
	})
	if err != nil {
		return moderation.FlagOutput{}, err
	}

	return moderation.FlagOutput{Flag: flag}, nil
}

func (uc *implUseCase) createFlag(ctx context.Context, params createFlagParams) (*model.ContentFlag, error) {
	status := model.FlagStatusPending
	if params.Severity == model.SeverityCritical {
		status = model.FlagStatusEscalated
	}

	flag, err := uc.flagRepo.CreateFlag(ctx, repository.CreateFlagOptions{
		ID:          uuid.NewString(),
		ContentID:   params.ContentID,
		ContentType: params.ContentType,
		FlagType:    params.FlagType,
		Severity:    params.Severity,
		Status:      status,
		FlaggedBy:   params.FlaggedBy,
		Reason:      params.Reason,
		Description: params.Description,
		Evidence:    params.Evidence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.createFlag: Failed to create flag for content %s: %v", params.ContentID, err)
		return nil, moderation.ErrFlagCreateFailed
	}

	uc.events.FlagCreated(ctx, flag)
	uc.invalidateAggregates(ctx)

	return flag, nil
}

// GetFlaggedContent lists flags with AND-combined filters and pagination.
func (uc *implUseCase) GetFlaggedContent(ctx context.Context, sc model.Scope, input moderation.GetFlaggedContentInput) (moderation.FlaggedContentOutput, error) {
	if input.Status != "" && !model.ValidFlagStatus(input.Status) {
		return moderation.FlaggedContentOutput{}, moderation.ErrInvalidStatus
	}
	if input.FlagType != "" && !model.ValidFlagType(input.FlagType) {
		return moderation.FlaggedContentOutput{}, moderation.ErrInvalidFlagType
	}
	if input.Severity != "" && !model.ValidSeverity(input.Severity) {
		return moderation.FlaggedContentOutput{}, moderation.ErrInvalidSeverity
	}
	if input.ContentType != "" && !model.ValidContentType(input.ContentType) {
		return moderation.FlaggedContentOutput{}, moderation.ErrInvalidContentType
	}

	input.Paginate.Adjust()

	flags, total, err := uc.flagRepo.ListFlags(ctx, repository.ListFlagsOptions{
		Status:      input.Status,
		FlagType:    input.FlagType,
		Severity:    input.Severity,
		ContentType: input.ContentType,
		Limit:       input.Paginate.Limit,
		Offset:      input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.GetFlaggedContent: Failed to list flags: %v", err)
		return moderation.FlaggedContentOutput{}, moderation.ErrListFailed
	}

	return moderation.FlaggedContentOutput{
		Flags:     flags,
		Paginator: paginatorOf(total, int64(len(flags)), input.Paginate),
	}, nil
}
