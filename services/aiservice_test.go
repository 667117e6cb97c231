package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"weekplanner/model"
)

func fakeGemini(t *testing.T, status int, text string) *AIClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
			return
		}
		escaped, _ := json.Marshal(text)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + string(escaped) + `}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewAIClient("test-key", "test-model")
	client.baseURL = srv.URL
	return client
}

func TestDraftTaskFromPrompt(t *testing.T) {
	client := fakeGemini(t, http.StatusOK, `{
		"title": "Dentist appointment",
		"date": "2025-08-13",
		"start_time": "14:30",
		"duration_min": 45,
		"category": "health",
		"priority": "high",
		"subtasks": ["bring insurance card", "leave 20 min early"],
		"notes": "Dr. Evans"
	}`)

	now := time.Date(2025, 8, 11, 9, 0, 0, 0, time.Local)
	draft, err := client.DraftTask(context.Background(), "dentist wednesday 2:30pm", now)
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}

	if draft.Title != "Dentist appointment" {
		t.Errorf("unexpected title %q", draft.Title)
	}
	wantStart := time.Date(2025, 8, 13, 14, 30, 0, 0, time.Local)
	if !draft.StartAt.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, draft.StartAt)
	}
	if got := draft.EndAt.Sub(draft.StartAt); got != 45*time.Minute {
		t.Errorf("expected 45 minute duration, got %v", got)
	}
	if draft.Category != model.CategoryHealth || draft.Priority != model.PriorityHigh {
		t.Errorf("enum fields not carried over: %q %q", draft.Category, draft.Priority)
	}
	if len(draft.Subtasks) != 2 {
		t.Errorf("expected 2 subtasks, got %v", draft.Subtasks)
	}
	if draft.TaskID != "" || draft.OwnerID != "" || !draft.CreatedAt.IsZero() {
		t.Error("a draft must not carry store-assigned fields")
	}
}

func TestDraftTaskMissingTitle(t *testing.T) {
	client := fakeGemini(t, http.StatusOK, `{
		"date": "2025-08-13",
		"start_time": "14:30",
		"duration_min": 45,
		"category": "health",
		"priority": "high",
		"subtasks": []
	}`)

	_, err := client.DraftTask(context.Background(), "dentist", time.Now())
	if !errors.Is(err, ErrIncompleteDraft) {
		t.Fatalf("expected ErrIncompleteDraft, got %v", err)
	}
}

func TestDraftTaskRejectsBadEnums(t *testing.T) {
	client := fakeGemini(t, http.StatusOK, `{
		"title": "x",
		"date": "2025-08-13",
		"start_time": "14:30",
		"duration_min": 45,
		"category": "chores",
		"priority": "high",
		"subtasks": []
	}`)

	if _, err := client.DraftTask(context.Background(), "x", time.Now()); !errors.Is(err, ErrIncompleteDraft) {
		t.Fatalf("expected ErrIncompleteDraft for unknown category, got %v", err)
	}
}

func TestDraftTaskTransportError(t *testing.T) {
	client := fakeGemini(t, http.StatusInternalServerError, "")
	if _, err := client.DraftTask(context.Background(), "x", time.Now()); err == nil {
		t.Fatal("expected an error from a failed transport")
	}
}

func TestSuggestSubtasks(t *testing.T) {
	client := fakeGemini(t, http.StatusOK, "- book the room\n- invite the team\n- prepare slides")

	items, err := client.SuggestSubtasks(context.Background(), "plan sprint review")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	want := []string{"book the room", "invite the team", "prepare slides"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], items[i])
		}
	}
}

func TestSuggestSubtasksEmptyReply(t *testing.T) {
	client := fakeGemini(t, http.StatusOK, "\n  \n")
	if _, err := client.SuggestSubtasks(context.Background(), "x"); err == nil {
		t.Fatal("expected an error for an empty suggestion")
	}
}

func TestParseSubtaskLines(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"- a\n- b", []string{"a", "b"}},
		{"* a\n* b", []string{"a", "b"}},
		{"1. first\n2. second\n10. tenth", []string{"first", "second", "tenth"}},
		{"plain line", []string{"plain line"}},
		{"", nil},
	}
	for _, tc := range cases {
		got := ParseSubtaskLines(tc.raw)
		if len(got) != len(tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.raw, tc.want, got)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%q item %d: expected %q, got %q", tc.raw, i, tc.want[i], got[i])
			}
		}
	}
}
