package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dayplan/pkg/task"
)

// Persistence is the task store: one snapshot slot holding the whole task
// list, rewritten in full on every mutation. Mutations on an unknown id are
// no-ops; reads of a missing or corrupt snapshot degrade to an empty list.
type Persistence interface {
	List() []*task.Task
	Create(t *task.Task) ([]*task.Task, error)
	Replace(id string, t *task.Task) ([]*task.Task, error)
	UpdateStatus(id string, status task.Status) ([]*task.Task, error)
	Delete(id string) ([]*task.Task, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// snapshotKey names the single storage slot for the serialized task list.
const snapshotKey = "tasks.json"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) List() []*task.Task {
	val, err := p.d.Read(snapshotKey)
	if err != nil {
		// Missing snapshot means no tasks yet.
		return []*task.Task{}
	}
	var tasks []*task.Task
	if err := json.Unmarshal(val, &tasks); err != nil {
		fmt.Fprintf(os.Stderr, "store: unreadable snapshot, starting empty: %v\n", err)
		return []*task.Task{}
	}
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		t.Normalize()
		out = append(out, t)
	}
	return out
}

func (p *persistence) persist(tasks []*task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	if err := p.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

func (p *persistence) Create(t *task.Task) ([]*task.Task, error) {
	cp := t.Clone()
	if cp.ID == "" {
		cp.ID = task.NewID()
	}
	cp.Normalize()
	tasks := append(p.List(), cp)
	if err := p.persist(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (p *persistence) Replace(id string, t *task.Task) ([]*task.Task, error) {
	tasks := p.List()
	for i, existing := range tasks {
		if existing.ID != id {
			continue
		}
		cp := t.Clone()
		cp.ID = id
		cp.Normalize()
		tasks[i] = cp
		if err := p.persist(tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}
	// Unknown id: leave the snapshot alone.
	return tasks, nil
}

func (p *persistence) UpdateStatus(id string, status task.Status) ([]*task.Task, error) {
	tasks := p.List()
	for _, existing := range tasks {
		if existing.ID != id {
			continue
		}
		existing.Status = status
		if err := p.persist(tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}
	return tasks, nil
}

func (p *persistence) Delete(id string) ([]*task.Task, error) {
	tasks := p.List()
	for i, existing := range tasks {
		if existing.ID != id {
			continue
		}
		tasks = append(tasks[:i], tasks[i+1:]...)
		if err := p.persist(tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}
	return tasks, nil
}
