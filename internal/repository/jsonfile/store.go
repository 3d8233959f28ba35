// Package jsonfile stores the task collection as a single JSON document.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/awsl-project/entrainde/internal/domain"
)

// FileName is the default document name inside the data directory.
const FileName = "tasks.json"

// tasksKey is the document key holding the task list.
const tasksKey = "tasks"

// Repository reads and writes {"tasks": [...]} at path. Other top-level
// keys in the document are preserved across writes.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the document location.
func (r *Repository) Path() string {
	return r.path
}

// Load returns the stored tasks. A missing document is an empty collection.
// A tasks entry that does not decode is also treated as empty.
func (r *Repository) Load() ([]*domain.Task, error) {
	doc, err := r.readDocument()
	if err != nil {
		return nil, err
	}

	raw, ok := doc[tasksKey]
	if !ok {
		return []*domain.Task{}, nil
	}

	var tasks []*domain.Task
	if err := sonic.Unmarshal(raw, &tasks); err != nil {
		log.Printf("[Store] Ignoring undecodable tasks in %s: %v", r.path, err)
		return []*domain.Task{}, nil
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Replace writes tasks to the document through a temp file and rename.
func (r *Repository) Replace(tasks []*domain.Task) error {
	doc, err := r.readDocument()
	if err != nil {
		doc = map[string]json.RawMessage{}
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	encoded, err := sonic.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	doc[tasksKey] = encoded

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", r.path, err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return doc, nil
}
