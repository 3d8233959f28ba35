package cached

import (
	"fmt"
	"sync"

	"github.com/awsl-project/entrainde/internal/domain"
	"github.com/awsl-project/entrainde/internal/repository"
)

// TaskStore keeps the task collection in memory and writes it through to a
// TaskRepository on every change.
type TaskStore struct {
	repo  repository.TaskRepository
	cache []*domain.Task
	mu    sync.RWMutex
}

var _ repository.TaskStore = (*TaskStore)(nil)

func NewTaskStore(repo repository.TaskRepository) *TaskStore {
	return &TaskStore{
		repo:  repo,
		cache: make([]*domain.Task, 0),
	}
}

// Load 从存储加载所有任务到内存（启动时调用一次）
// The write lock covers the read as well as the swap, so a concurrent
// Append is either already in the backend or applied after the swap.
func (s *TaskStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	s.cache = tasks
	return nil
}

// Reload re-reads the backend, picking up changes made by another process.
func (s *TaskStore) Reload() error {
	return s.Load()
}

// GetAll returns a copy of the collection.
func (s *TaskStore) GetAll() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Task, len(s.cache))
	for i, t := range s.cache {
		c := *t
		out[i] = &c
	}
	return out
}

func (s *TaskStore) Append(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *task
	next := append(s.cache[:len(s.cache):len(s.cache)], &c)
	if err := s.persist(next); err != nil {
		return err
	}
	s.cache = next
	return nil
}

func (s *TaskStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	empty := make([]*domain.Task, 0)
	if err := s.persist(empty); err != nil {
		return err
	}
	s.cache = empty
	return nil
}

func (s *TaskStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(s.cache)
}

// Search returns distinct task names matching query, best matches first.
func (s *TaskStore) Search(query string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SearchNames(s.cache, query)
}

// RemoveBefore drops tasks older than since and returns how many went.
// Nothing is written if no task is removed.
func (s *TaskStore) RemoveBefore(since int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := domain.KeepSince(s.cache, since)
	removed := len(s.cache) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.persist(kept); err != nil {
		return 0, err
	}
	s.cache = kept
	return removed, nil
}

// Close releases the backend.
func (s *TaskStore) Close() error {
	return s.repo.Close()
}

// persist 调用前必须持有写锁
func (s *TaskStore) persist(tasks []*domain.Task) error {
	if err := s.repo.Replace(tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
