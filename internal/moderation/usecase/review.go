package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

// ReviewContentFlag applies an approve, reject, or escalate decision.
// The status transition is a compare-and-set on the status the reviewer saw,
// so concurrent reviews of the same flag cannot both win. Enforcement
// dispatch happens after the transition commits and never rolls it back.
func (uc *implUseCase) ReviewContentFlag(ctx context.Context, sc model.Scope, input moderation.ReviewFlagInput) (moderation.FlagOutput, error) {
	if !moderation.ValidDecision(input.Decision) {
		return moderation.FlagOutput{}, moderation.ErrInvalidDecision
	}

	flag, err := uc.flagRepo.GetFlagByID(ctx, input.FlagID)
	if err != nil {
		if errors.Is(err, repository.ErrFlagNotFound) {
			return moderation.FlagOutput{}, moderation.ErrFlagNotFound
		}
		uc.l.Errorf(ctx, "moderation.usecase.ReviewContentFlag: Failed to get flag %s: %v", input.FlagID, err)
		return moderation.FlagOutput{}, moderation.ErrReviewFailed
	}

	newStatus, err := nextStatus(flag.Status, input.Decision)
	if err != nil {
		return moderation.FlagOutput{}, err
	}

	actions, err := uc.buildActions(input.Actions, sc.UserID)
	if err != nil {
		return moderation.FlagOutput{}, err
	}

	updated, err := uc.flagRepo.UpdateReview(ctx, repository.UpdateReviewOptions{
		FlagID:          flag.ID,
		ExpectedStatus:  flag.Status,
		NewStatus:       newStatus,
		ReviewedBy:      sc.UserID,
		ReviewedAt:      uc.clock(),
		ResolutionNotes: input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFlagNotFound):
			return moderation.FlagOutput{}, moderation.ErrFlagNotFound
		case errors.Is(err, repository.ErrFlagUpdateConflict):
			return moderation.FlagOutput{}, moderation.ErrInvalidTransition
		}
		uc.l.Errorf(ctx, "moderation.usecase.ReviewContentFlag: Failed to update flag %s: %v", flag.ID, err)
		return moderation.FlagOutput{}, moderation.ErrReviewFailed
	}

	for _, action := range actions {
		params, _ := json.Marshal(action.Parameters)
		if err := uc.flagRepo.AppendAction(ctx, repository.AppendActionOptions{
			FlagID:     updated.ID,
			Type:       action.Type,
			ExecutedBy: action.ExecutedBy,
			ExecutedAt: action.ExecutedAt,
			Parameters: params,
			Reversible: action.Reversible,
		}); err != nil {
			uc.l.Errorf(ctx, "moderation.usecase.ReviewContentFlag: Failed to append action %s to flag %s: %v", action.Type, updated.ID, err)
			return moderation.FlagOutput{}, moderation.ErrReviewFailed
		}
	}
	updated.Actions = append(updated.Actions, actions...)

	if len(actions) > 0 {
		if err := uc.dispatcher.Dispatch(ctx, updated, actions); err != nil {
			// The review already committed. Enforcement retries are the
			// broker consumer's problem, not a reason to fail the request.
			uc.l.Errorf(ctx, "moderation.usecase.ReviewContentFlag: Failed to dispatch enforcement for flag %s: %v", updated.ID, err)
		}
	}

	uc.events.FlagReviewed(ctx, updated, input.Decision)
	uc.invalidateAggregates(ctx)

	return moderation.FlagOutput{Flag: updated}, nil
}

// nextStatus maps a decision applied to the current status onto the new one.
// Terminal statuses admit nothing; an escalated flag cannot escalate again.
func nextStatus(current, decision string) (string, error) {
	if model.IsTerminal(current) {
		return "", moderation.ErrInvalidTransition
	}

	switch decision {
	case moderation.DecisionApprove:
		return model.FlagStatusApproved, nil
	case moderation.DecisionReject:
		return model.FlagStatusRejected, nil
	case moderation.DecisionEscalate:
		if current == model.FlagStatusEscalated {
			return "", moderation.ErrInvalidTransition
		}
		return model.FlagStatusEscalated, nil
	}
	return "", moderation.ErrInvalidDecision
}

func (uc *implUseCase) buildActions(inputs []moderation.ActionInput, executedBy string) ([]model.ContentAction, error) {
	actions := make([]model.ContentAction, 0, len(inputs))
	for _, in := range inputs {
		params, err := model.DecodeActionParams(in.Type, in.Parameters)
		if err != nil {
			return nil, moderation.ErrInvalidAction
		}
		action, err := model.NewContentAction(params, executedBy)
		if err != nil {
			return nil, moderation.ErrInvalidAction
		}
		actions = append(actions, action)
	}
	return actions, nil
}
