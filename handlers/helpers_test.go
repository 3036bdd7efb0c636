package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"softkom/models"

	"github.com/google/uuid"
)

func TestWriteJSONTaskContract(t *testing.T) {
	task := models.Task{
		ID:          7,
		UserID:      uuid.New(),
		Description: "buy milk",
		Category:    "personal",
		Completed:   false,
		Timestamp:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	w := httptest.NewRecorder()
	writeJSON(w, http.StatusCreated, task)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if got["id"] != float64(7) {
		t.Errorf("id = %v, want 7", got["id"])
	}
	if got["description"] != "buy milk" {
		t.Errorf("description = %v, want buy milk", got["description"])
	}
	if got["category"] != "personal" {
		t.Errorf("category = %v, want personal", got["category"])
	}
	if got["completed"] != false {
		t.Errorf("completed = %v, want false", got["completed"])
	}
	if got["timestamp"] != "2025-03-14T09:30:00Z" {
		t.Errorf("timestamp = %v, want ISO-8601 UTC", got["timestamp"])
	}
	// The owner id never appears on the wire.
	if _, leaked := got["user_id"]; leaked {
		t.Error("user_id leaked into the task JSON")
	}
}

func TestErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	errorJSON(w, http.StatusForbidden, "unauthorized")

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got["error"] != "unauthorized" {
		t.Errorf("error = %q, want unauthorized", got["error"])
	}
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"description":"buy milk","category":"personal"}`))

	var in createTaskRequest
	if err := decodeJSON(r, &in); err != nil {
		t.Fatalf("decodeJSON() error = %v", err)
	}
	if in.Description != "buy milk" || in.Category != "personal" || in.Completed {
		t.Errorf("decoded = %+v, want description/category set and completed false", in)
	}

	r = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`not json`))
	if err := decodeJSON(r, &in); err == nil {
		t.Error("decodeJSON() should reject a malformed body")
	}
}
