package desktop

import (
	"log"
	"time"

	"github.com/awsl-project/entrainde/internal/domain"
)

// MaxSuggestions caps the autocompletion list.
const MaxSuggestions = 5

// TaskService is what the main window needs from the task store.
type TaskService interface {
	GetAll() []*domain.Task
	Append(task *domain.Task) error
	Search(query string) []string
}

// TaskBinding is bound to the frontend as window.go.desktop.TaskBinding.
type TaskBinding struct {
	store TaskService
	now   func() time.Time
}

func NewTaskBinding(store TaskService) *TaskBinding {
	return &TaskBinding{store: store, now: time.Now}
}

// AddTask records a task named name at the current time.
func (b *TaskBinding) AddTask(name string) error {
	task, err := domain.NewTask(name, b.now())
	if err != nil {
		return err
	}
	if err := b.store.Append(task); err != nil {
		log.Printf("[Store] Failed to add task: %v", err)
		return err
	}
	return nil
}

func (b *TaskBinding) GetTasks() []*domain.Task {
	return b.store.GetAll()
}

// SearchTasks returns up to MaxSuggestions matching task names, best
// first. A blank query returns nothing.
func (b *TaskBinding) SearchTasks(query string) []string {
	if query == "" {
		return []string{}
	}
	names := b.store.Search(query)
	if len(names) > MaxSuggestions {
		names = names[:MaxSuggestions]
	}
	return names
}
