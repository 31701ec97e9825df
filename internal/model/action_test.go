package model

import (
	"testing"
)

func TestNewContentAction(t *testing.T) {
	t.Run("delete content is irreversible", func(t *testing.T) {
		action, err := NewContentAction(DeleteContentParams{Reason: "fraudulent listing"}, "admin-1")
		if err != nil {
			t.Fatalf("NewContentAction failed: %v", err)
		}
		if action.Reversible {
			t.Error("DELETE_CONTENT must be irreversible")
		}
	})

	t.Run("every other type is reversible", func(t *testing.T) {
		params := []ActionParams{
			HideContentParams{},
			WarnUserParams{Message: "mind the rules"},
			SuspendUserParams{DurationDays: 7},
			BanUserParams{Reason: "repeat offender"},
			RequireEditParams{},
			NoActionParams{},
		}
		for _, p := range params {
			action, err := NewContentAction(p, "admin-1")
			if err != nil {
				t.Fatalf("NewContentAction(%s) failed: %v", p.ActionType(), err)
			}
			if !action.Reversible {
				t.Errorf("%s should be reversible", p.ActionType())
			}
			if action.Type != p.ActionType() {
				t.Errorf("Type mismatch: got %s, want %s", action.Type, p.ActionType())
			}
		}
	})

	t.Run("executor is required", func(t *testing.T) {
		if _, err := NewContentAction(HideContentParams{}, ""); err != ErrMissingActionContext {
			t.Errorf("Error mismatch: got %v, want %v", err, ErrMissingActionContext)
		}
	})

	t.Run("parameter validation", func(t *testing.T) {
		cases := []struct {
			name   string
			params ActionParams
		}{
			{"warn without message", WarnUserParams{}},
			{"suspend without duration", SuspendUserParams{}},
			{"suspend with negative duration", SuspendUserParams{DurationDays: -3}},
			{"ban without reason", BanUserParams{}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := NewContentAction(tc.params, "admin-1"); err != ErrInvalidActionParams {
					t.Errorf("Error mismatch: got %v, want %v", err, ErrInvalidActionParams)
				}
			})
		}
	})
}

func TestDecodeActionParams(t *testing.T) {
	t.Run("decodes typed parameters", func(t *testing.T) {
		params, err := DecodeActionParams(ActionSuspendUser, []byte(`{"duration_days": 14, "reason": "spam"}`))
		if err != nil {
			t.Fatalf("DecodeActionParams failed: %v", err)
		}
		suspend, ok := params.(SuspendUserParams)
		if !ok {
			t.Fatalf("Type mismatch: got %T", params)
		}
		if suspend.DurationDays != 14 {
			t.Errorf("DurationDays mismatch: got %d, want 14", suspend.DurationDays)
		}
	})

	t.Run("empty payload yields zero params", func(t *testing.T) {
		params, err := DecodeActionParams(ActionHideContent, nil)
		if err != nil {
			t.Fatalf("DecodeActionParams failed: %v", err)
		}
		if _, ok := params.(HideContentParams); !ok {
			t.Fatalf("Type mismatch: got %T", params)
		}
	})

	t.Run("unknown type tag", func(t *testing.T) {
		if _, err := DecodeActionParams("NUKE_FROM_ORBIT", nil); err != ErrUnknownActionType {
			t.Errorf("Error mismatch: got %v, want %v", err, ErrUnknownActionType)
		}
	})
}
