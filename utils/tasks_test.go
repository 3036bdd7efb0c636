package utils_test

import (
	"encoding/json"
	"errors"
	"testing"

	"softkom/utils"

	"github.com/jackc/pgx/v5"
)

// The access decision for a mutation checks existence before ownership: a
// missing task reads as not-found for every caller, and a forbidden result
// only ever comes from a task that exists and belongs to someone else. The
// store mutates nothing unless the decision is nil.
func TestCheckTaskAccess(t *testing.T) {
	tests := []struct {
		name     string
		scanErr  error
		ownerID  string
		callerID string
		want     error
	}{
		{
			name:     "Missing task is not found even for a non-owner caller",
			scanErr:  pgx.ErrNoRows,
			ownerID:  "",
			callerID: "user-a",
			want:     utils.ErrTaskNotFound,
		},
		{
			name:     "Existing task owned by someone else is forbidden",
			scanErr:  nil,
			ownerID:  "user-b",
			callerID: "user-a",
			want:     utils.ErrNotTaskOwner,
		},
		{
			name:     "Owner may proceed",
			scanErr:  nil,
			ownerID:  "user-a",
			callerID: "user-a",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.CheckTaskAccess(tt.scanErr, tt.ownerID, tt.callerID)
			if tt.want == nil {
				if got != nil {
					t.Errorf("CheckTaskAccess() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("CheckTaskAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckTaskAccessLookupFailure(t *testing.T) {
	got := utils.CheckTaskAccess(errors.New("connection reset"), "user-b", "user-a")
	if got == nil {
		t.Fatal("CheckTaskAccess() should propagate a lookup failure")
	}
	// A store failure must not masquerade as an access decision.
	if errors.Is(got, utils.ErrTaskNotFound) || errors.Is(got, utils.ErrNotTaskOwner) {
		t.Errorf("CheckTaskAccess() = %v, want neither access sentinel", got)
	}
}

// Partial updates hinge on the decode step: a field absent from the body must
// come out as a nil pointer so the store keeps the current value.
func TestTaskUpdateDecode(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		wantDescription *string
		wantCategory    *string
		wantCompleted   *bool
	}{
		{
			name:          "Only completed present leaves other fields nil",
			body:          `{"completed": true}`,
			wantCompleted: boolPtr(true),
		},
		{
			name:            "All fields present",
			body:            `{"description": "buy milk", "category": "personal", "completed": false}`,
			wantDescription: strPtr("buy milk"),
			wantCategory:    strPtr("personal"),
			wantCompleted:   boolPtr(false),
		},
		{
			name: "Empty object leaves every field nil",
			body: `{}`,
		},
		{
			name: "Explicit null behaves like absent",
			body: `{"description": null, "completed": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upd utils.TaskUpdate
			if err := json.Unmarshal([]byte(tt.body), &upd); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			comparePtr(t, "Description", upd.Description, tt.wantDescription)
			comparePtr(t, "Category", upd.Category, tt.wantCategory)
			comparePtr(t, "Completed", upd.Completed, tt.wantCompleted)
		})
	}
}

func comparePtr[T comparable](t *testing.T, field string, got, want *T) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, want %v", field, got, want)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
