package model

import (
	"encoding/json"
	"errors"
	"time"
)

// Enforcement action types. The set is closed: every type has its own
// validated parameter shape below.
const (
	ActionHideContent   = "HIDE_CONTENT"
	ActionDeleteContent = "DELETE_CONTENT"
	ActionWarnUser      = "WARN_USER"
	ActionSuspendUser   = "SUSPEND_USER"
	ActionBanUser       = "BAN_USER"
	ActionRequireEdit   = "REQUIRE_EDIT"
	ActionNoAction      = "NO_ACTION"
)

var (
	ErrUnknownActionType    = errors.New("model: unknown action type")
	ErrInvalidActionParams  = errors.New("model: invalid action parameters")
	ErrMissingActionContext = errors.New("model: action executor is required")
)

// ContentAction is a single enforcement step applied to a flag.
// Reversible is fixed at construction and never mutated: DELETE_CONTENT is
// always irreversible, every other type is reversible.
type ContentAction struct {
	Type       string
	ExecutedBy string
	ExecutedAt time.Time
	Parameters ActionParams
	Reversible bool
}

// ActionParams is the closed variant set of per-type enforcement parameters.
type ActionParams interface {
	ActionType() string
	Validate() error
}

// HideContentParams hides the content from public view.
type HideContentParams struct {
	Reason string `json:"reason,omitempty"`
}

func (HideContentParams) ActionType() string { return ActionHideContent }
func (HideContentParams) Validate() error    { return nil }

// DeleteContentParams removes the content permanently.
type DeleteContentParams struct {
	Reason string `json:"reason,omitempty"`
}

func (DeleteContentParams) ActionType() string { return ActionDeleteContent }
func (DeleteContentParams) Validate() error    { return nil }

// WarnUserParams sends a warning to the content author.
type WarnUserParams struct {
	Message string `json:"message"`
}

func (WarnUserParams) ActionType() string { return ActionWarnUser }
func (p WarnUserParams) Validate() error {
	if p.Message == "" {
		return ErrInvalidActionParams
	}
	return nil
}

// SuspendUserParams suspends the content author for a bounded period.
type SuspendUserParams struct {
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason,omitempty"`
}

func (SuspendUserParams) ActionType() string { return ActionSuspendUser }
func (p SuspendUserParams) Validate() error {
	if p.DurationDays <= 0 {
		return ErrInvalidActionParams
	}
	return nil
}

// BanUserParams permanently bans the content author.
type BanUserParams struct {
	Reason string `json:"reason"`
}

func (BanUserParams) ActionType() string { return ActionBanUser }
func (p BanUserParams) Validate() error {
	if p.Reason == "" {
		return ErrInvalidActionParams
	}
	return nil
}

// RequireEditParams requires the author to edit the content before it is shown again.
type RequireEditParams struct {
	Fields []string `json:"fields,omitempty"`
	Note   string   `json:"note,omitempty"`
}

func (RequireEditParams) ActionType() string { return ActionRequireEdit }
func (RequireEditParams) Validate() error    { return nil }

// NoActionParams records an explicit decision to take no enforcement step.
type NoActionParams struct{}

func (NoActionParams) ActionType() string { return ActionNoAction }
func (NoActionParams) Validate() error    { return nil }

// NewContentAction constructs a validated ContentAction. Reversibility is
// derived from the type here and nowhere else.
func NewContentAction(params ActionParams, executedBy string) (ContentAction, error) {
	if params == nil {
		return ContentAction{}, ErrUnknownActionType
	}
	if executedBy == "" {
		return ContentAction{}, ErrMissingActionContext
	}
	if err := params.Validate(); err != nil {
		return ContentAction{}, err
	}

	return ContentAction{
		Type:       params.ActionType(),
		ExecutedBy: executedBy,
		ExecutedAt: time.Now(),
		Parameters: params,
		Reversible: params.ActionType() != ActionDeleteContent,
	}, nil
}

// DecodeActionParams unmarshals a raw parameter payload into the concrete
// shape for a type tag, used when decoding requests and database rows.
// Unknown tags return an error; an empty payload yields zero-value params.
func DecodeActionParams(actionType string, raw []byte) (ActionParams, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch actionType {
	case ActionHideContent:
		var p HideContentParams
		return p, json.Unmarshal(raw, &p)
	case ActionDeleteContent:
		var p DeleteContentParams
		return p, json.Unmarshal(raw, &p)
	case ActionWarnUser:
		var p WarnUserParams
		return p, json.Unmarshal(raw, &p)
	case ActionSuspendUser:
		var p SuspendUserParams
		return p, json.Unmarshal(raw, &p)
	case ActionBanUser:
		var p BanUserParams
		return p, json.Unmarshal(raw, &p)
	case ActionRequireEdit:
		var p RequireEditParams
		return p, json.Unmarshal(raw, &p)
	case ActionNoAction:
		return NoActionParams{}, nil
	}
	return nil, ErrUnknownActionType
}
