package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Turn", ActionTurn},
		{"ATTACK", ActionAttack},
		{"interact", ActionInteract},
		{"PASS", ActionPass},
		{"wait", ActionPass},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionPass, "PASS"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestActionType_NeedsDirection(t *testing.T) {
	for _, a := range []ActionType{ActionMove, ActionTurn} {
		if !a.NeedsDirection() {
			t.Errorf("%s should need a direction", a)
		}
	}
	for _, a := range []ActionType{ActionAttack, ActionInteract, ActionPass, ActionUnknown} {
		if a.NeedsDirection() {
			t.Errorf("%s should not need a direction", a)
		}
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		input    string
		expected EventType
	}{
		{"FLOOR_TRANSITION", EventFloorTransition},
		{"player_died", EventPlayerDied},
		{"nonsense", EventNone},
	}

	for _, tt := range tests {
		if got := ParseEvent(tt.input); got != tt.expected {
			t.Errorf("ParseEvent(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
