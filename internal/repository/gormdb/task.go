package gormdb

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/awsl-project/entrainde/internal/domain"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(d *DB) *TaskRepository {
	return &TaskRepository{db: d}
}

func (r *TaskRepository) Load() ([]*domain.Task, error) {
	var models []TaskModel
	if err := r.db.gorm.Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return r.toDomainList(models), nil
}

// Replace swaps the table contents in one transaction.
func (r *TaskRepository) Replace(tasks []*domain.Task) error {
	models := r.toModels(tasks)
	return r.db.gorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&TaskModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, 200).Error; err != nil {
			return fmt.Errorf("failed to insert tasks: %w", err)
		}
		return nil
	})
}

func (r *TaskRepository) Close() error {
	return r.db.Close()
}

func (r *TaskRepository) toModels(tasks []*domain.Task) []TaskModel {
	models := make([]TaskModel, len(tasks))
	for i, t := range tasks {
		models[i] = TaskModel{
			ID:        uuid.New().String(),
			Position:  i,
			Name:      t.Name,
			Timestamp: t.Timestamp,
		}
	}
	return models
}

func (r *TaskRepository) toDomainList(models []TaskModel) []*domain.Task {
	tasks := make([]*domain.Task, len(models))
	for i, m := range models {
		tasks[i] = &domain.Task{Name: m.Name, Timestamp: m.Timestamp}
	}
	return tasks
}
