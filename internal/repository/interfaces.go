package repository

import (
	"github.com/awsl-project/entrainde/internal/domain"
)

// TaskRepository persists the whole task collection as one unit.
type TaskRepository interface {
	// Load returns every stored task in insertion order
	Load() ([]*domain.Task, error)
	// Replace overwrites the stored collection with tasks
	Replace(tasks []*domain.Task) error
	Close() error
}

// TaskStore is the task collection used by the app, the tray and the CLI.
type TaskStore interface {
	GetAll() []*domain.Task
	// Append adds a task and persists the collection
	Append(task *domain.Task) error
	// Clear empties the collection and persists it
	Clear() error
	Save() error
}
