package editor

import (
	"testing"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestStore(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestSubmitCreatesPendingTask(t *testing.T) {
	p := newTestStore(t)

	s := OpenCreate("2024-03-15")
	if s.Editing() {
		t.Fatal("create session must not be bound")
	}
	for field, value := range map[string]string{
		"title":    "  walk the dog  ",
		"start":    "07:30",
		"end":      "08:00",
		"category": "home",
		"priority": "high",
	} {
		if err := s.Set(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}

	tasks, err := s.Submit(p)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "walk the dog" {
		t.Fatalf("title not trimmed: %q", got.Title)
	}
	if got.Status != task.StatusPending {
		t.Fatalf("new task status = %s, want pending", got.Status)
	}
	if got.Date != "2024-03-15" || got.Priority != task.PriorityHigh {
		t.Fatalf("fields not carried: %+v", got)
	}
	if got.ID == "" {
		t.Fatal("task must get an id")
	}
	if s.Open() {
		t.Fatal("session must close after successful submit")
	}
}

func TestSubmitWhitespaceTitleIsInert(t *testing.T) {
	p := newTestStore(t)

	s := OpenCreate("2024-03-15")
	if err := s.Set("title", "   "); err != nil {
		t.Fatalf("set title: %v", err)
	}

	tasks, err := s.Submit(p)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("whitespace-only title must not create a task, got %d", len(tasks))
	}
	if !s.Open() {
		t.Fatal("inert submit must leave the session open")
	}
}

func TestSubmitEditPreservesCurrentStatus(t *testing.T) {
	p := newTestStore(t)
	orig := task.New("review", "2024-03-15", "09:00")
	if _, err := p.Create(orig); err != nil {
		t.Fatalf("create: %v", err)
	}

	s := OpenEdit(orig)
	if !s.Editing() {
		t.Fatal("edit session must be bound")
	}

	// The status changes underneath the open session; submit must keep the
	// status current at submit time, not at open time.
	if _, err := p.UpdateStatus(orig.ID, task.StatusInProgress); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if err := s.Set("title", "review PRs"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	tasks, err := s.Submit(p)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != orig.ID {
		t.Fatalf("edit must keep the id, got %s", got.ID)
	}
	if got.Title != "review PRs" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.Status != task.StatusInProgress {
		t.Fatalf("status not preserved: %s", got.Status)
	}
}

func TestSubmitTrimsAndDropsEmptyNotes(t *testing.T) {
	p := newTestStore(t)

	s := OpenCreate("2024-03-15")
	if err := s.Set("title", "groceries"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if err := s.Set("start", "17:00"); err != nil {
		t.Fatalf("set start: %v", err)
	}
	if err := s.Set("notes", "   "); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	tasks, err := s.Submit(p)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tasks[0].Notes != "" {
		t.Fatalf("whitespace notes must become absent, got %q", tasks[0].Notes)
	}
}

func TestCancelLeavesStoreUntouched(t *testing.T) {
	p := newTestStore(t)

	s := OpenCreate("2024-03-15")
	if err := s.Set("title", "never happens"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	s.Cancel()
	if s.Open() {
		t.Fatal("cancel must close the session")
	}
	if got := p.List(); len(got) != 0 {
		t.Fatalf("cancel must not touch the store, got %d tasks", len(got))
	}
}

func TestSetValidation(t *testing.T) {
	s := OpenCreate("2024-03-15")
	if err := s.Set("date", "15/03/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if err := s.Set("start", "9:00"); err == nil {
		t.Fatal("expected error for unpadded time")
	}
	if err := s.Set("priority", "urgent"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
	if err := s.Set("color", "red"); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if err := s.Set("end", ""); err != nil {
		t.Fatalf("empty end time must be allowed: %v", err)
	}
}
