package cached

import (
	"errors"
	"testing"
	"time"

	"github.com/awsl-project/entrainde/internal/domain"
)

type fakeRepo struct {
	stored     []*domain.Task
	replaces   int
	replaceErr error
	loadErr    error
}

func (r *fakeRepo) Load() ([]*domain.Task, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]*domain.Task, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

func (r *fakeRepo) Replace(tasks []*domain.Task) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaces++
	r.stored = append([]*domain.Task(nil), tasks...)
	return nil
}

func (r *fakeRepo) Close() error { return nil }

func loadedStore(t *testing.T, tasks ...*domain.Task) (*TaskStore, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{stored: tasks}
	store := NewTaskStore(repo)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store, repo
}

func TestClearEmptiesAndSavesOnce(t *testing.T) {
	store, repo := loadedStore(t,
		&domain.Task{Name: "a", Timestamp: 1},
		&domain.Task{Name: "b", Timestamp: 2},
		&domain.Task{Name: "c", Timestamp: 3},
	)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n := len(store.GetAll()); n != 0 {
		t.Errorf("GetAll() has %d tasks, want 0", n)
	}
	if len(repo.stored) != 0 {
		t.Errorf("backend holds %d tasks, want 0", len(repo.stored))
	}
	if repo.replaces != 1 {
		t.Errorf("backend written %d times, want 1", repo.replaces)
	}
}

func TestClearFailureKeepsCache(t *testing.T) {
	store, repo := loadedStore(t, &domain.Task{Name: "a", Timestamp: 1})
	repo.replaceErr = errors.New("read-only filesystem")

	err := store.Clear()
	if !errors.Is(err, repo.replaceErr) {
		t.Fatalf("Clear() error = %v, want wrapped backend error", err)
	}
	if n := len(store.GetAll()); n != 1 {
		t.Errorf("GetAll() has %d tasks after failed clear, want 1", n)
	}
}

func TestAppend(t *testing.T) {
	store, repo := loadedStore(t, &domain.Task{Name: "a", Timestamp: 1})

	if err := store.Append(&domain.Task{Name: "b", Timestamp: 2}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	all := store.GetAll()
	if len(all) != 2 || all[1].Name != "b" {
		t.Errorf("GetAll() = %v", all)
	}
	if len(repo.stored) != 2 {
		t.Errorf("backend holds %d tasks, want 2", len(repo.stored))
	}

	repo.replaceErr = errors.New("boom")
	if err := store.Append(&domain.Task{Name: "c", Timestamp: 3}); err == nil {
		t.Fatal("Append() with failing backend returned nil")
	}
	if n := len(store.GetAll()); n != 2 {
		t.Errorf("failed append changed cache to %d tasks", n)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	store, _ := loadedStore(t, &domain.Task{Name: "a", Timestamp: 1})

	store.GetAll()[0].Name = "mutated"
	if got := store.GetAll()[0].Name; got != "a" {
		t.Errorf("cache mutated through GetAll(): %q", got)
	}
}

func TestRemoveBefore(t *testing.T) {
	store, repo := loadedStore(t,
		&domain.Task{Name: "yesterday", Timestamp: 50},
		&domain.Task{Name: "today", Timestamp: 150},
	)

	removed, err := store.RemoveBefore(100)
	if err != nil {
		t.Fatalf("RemoveBefore() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("RemoveBefore() removed %d, want 1", removed)
	}
	if all := store.GetAll(); len(all) != 1 || all[0].Name != "today" {
		t.Errorf("GetAll() = %v", all)
	}

	removed, err = store.RemoveBefore(100)
	if err != nil || removed != 0 {
		t.Errorf("second RemoveBefore() = %d, %v", removed, err)
	}
	if repo.replaces != 1 {
		t.Errorf("backend written %d times, want 1", repo.replaces)
	}
}

func TestReload(t *testing.T) {
	store, repo := loadedStore(t)
	repo.stored = []*domain.Task{{Name: "from cli", Timestamp: 9}}

	if err := store.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := store.Search("cli"); len(got) != 1 || got[0] != "from cli" {
		t.Errorf("Search() after reload = %v", got)
	}
}

func TestLoadError(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("permission denied")}
	if err := NewTaskStore(repo).Load(); !errors.Is(err, repo.loadErr) {
		t.Errorf("Load() error = %v", err)
	}
}

// slowRepo reads its snapshot, then waits for release before returning it,
// like a reload racing a save from the app.
type slowRepo struct {
	fakeRepo
	started chan struct{}
	release chan struct{}
}

func (r *slowRepo) Load() ([]*domain.Task, error) {
	tasks, err := r.fakeRepo.Load()
	if r.release != nil {
		close(r.started)
		<-r.release
	}
	return tasks, err
}

func TestReloadDoesNotDropConcurrentAppend(t *testing.T) {
	repo := &slowRepo{fakeRepo: fakeRepo{stored: []*domain.Task{{Name: "a", Timestamp: 1}}}}
	store := NewTaskStore(repo)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	repo.started = make(chan struct{})
	repo.release = make(chan struct{})

	reloaded := make(chan error, 1)
	go func() { reloaded <- store.Reload() }()
	<-repo.started

	appended := make(chan error, 1)
	go func() { appended <- store.Append(&domain.Task{Name: "b", Timestamp: 2}) }()

	// Give Append the chance to slip in while the reload is mid-read.
	time.Sleep(20 * time.Millisecond)
	close(repo.release)

	if err := <-reloaded; err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if err := <-appended; err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	all := store.GetAll()
	if len(all) != 2 || all[1].Name != "b" {
		t.Errorf("GetAll() = %v, want [a b]", all)
	}
	if len(repo.stored) != 2 {
		t.Errorf("backend holds %d tasks, want 2", len(repo.stored))
	}
}
