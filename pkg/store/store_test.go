package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestListEmptyWhenNoSnapshot(t *testing.T) {
	p := newTestStore(t)
	if got := p.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(got))
	}
}

func TestCreatePersistsAndRoundTrips(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	in := task.New("write report", "2024-03-15", "09:00")
	in.Description = "quarterly numbers"
	in.Category = "work"
	in.EndTime = "10:30"
	in.Priority = task.PriorityHigh

	if _, err := p.Create(in); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh Persistence over the same path must see the same task.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	got := p2.List()
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	out := got[0]
	if out.ID != in.ID || out.Title != in.Title || out.Description != in.Description ||
		out.Category != in.Category || out.Date != in.Date ||
		out.StartTime != in.StartTime || out.EndTime != in.EndTime ||
		out.Priority != in.Priority || out.Status != task.StatusPending {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestListDegradesOnMalformedSnapshot(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "tasks.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed malformed snapshot: %v", err)
	}
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.List(); len(got) != 0 {
		t.Fatalf("expected empty list from malformed snapshot, got %d", len(got))
	}

	// The next mutation overwrites the bad snapshot.
	if _, err := p.Create(task.New("recover", "2024-03-15", "08:00")); err != nil {
		t.Fatalf("create after malformed snapshot: %v", err)
	}
	if got := p.List(); len(got) != 1 {
		t.Fatalf("expected 1 task after recovery, got %d", len(got))
	}
}

func TestReplacePreservesID(t *testing.T) {
	p := newTestStore(t)
	orig := task.New("draft", "2024-03-15", "09:00")
	if _, err := p.Create(orig); err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := orig.Clone()
	edited.Title = "final"
	edited.StartTime = "10:00"
	tasks, err := p.Replace(orig.ID, edited)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != orig.ID || tasks[0].Title != "final" {
		t.Fatalf("unexpected result after replace: %+v", tasks)
	}
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	p := newTestStore(t)
	seed := task.New("keep me", "2024-03-15", "09:00")
	if _, err := p.Create(seed); err != nil {
		t.Fatalf("create: %v", err)
	}

	if tasks, err := p.UpdateStatus("nonexistent-id", task.StatusDone); err != nil {
		t.Fatalf("update status: %v", err)
	} else if len(tasks) != 1 || tasks[0].Status != task.StatusPending {
		t.Fatalf("unknown-id status update changed the list: %+v", tasks)
	}

	if tasks, err := p.Replace("nonexistent-id", seed); err != nil {
		t.Fatalf("replace: %v", err)
	} else if len(tasks) != 1 {
		t.Fatalf("unknown-id replace changed the list: %+v", tasks)
	}

	if tasks, err := p.Delete("nonexistent-id"); err != nil {
		t.Fatalf("delete: %v", err)
	} else if len(tasks) != 1 {
		t.Fatalf("unknown-id delete changed the list: %+v", tasks)
	}
}

func TestUpdateStatusAndDelete(t *testing.T) {
	p := newTestStore(t)
	a := task.New("first", "2024-03-15", "09:00")
	b := task.New("second", "2024-03-15", "14:00")
	if _, err := p.Create(a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := p.Create(b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	tasks, err := p.UpdateStatus(a.ID, task.StatusDone)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	for _, got := range tasks {
		if got.ID == a.ID && got.Status != task.StatusDone {
			t.Fatalf("status not updated: %+v", got)
		}
		if got.ID == b.ID && got.Status != task.StatusPending {
			t.Fatalf("wrong task updated: %+v", got)
		}
	}

	tasks, err = p.Delete(a.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Fatalf("unexpected list after delete: %+v", tasks)
	}
}

func TestWatchEmitsOnSnapshotWrite(t *testing.T) {
	p := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if _, err := p.Create(task.New("hello", "2024-03-15", "09:00")); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot change event")
	}
}
