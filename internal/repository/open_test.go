package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/awsl-project/entrainde/internal/domain"
	"github.com/awsl-project/entrainde/internal/repository/gormdb"
	"github.com/awsl-project/entrainde/internal/repository/jsonfile"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "tasks.json")

	tests := []struct {
		name     string
		dsn      string
		wantJSON bool
	}{
		{"empty dsn uses json file", "", true},
		{"bare path uses sqlite", filepath.Join(dir, "tasks.db"), false},
		{"sqlite scheme", "sqlite://" + filepath.Join(dir, "other.db"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(tt.dsn, jsonPath)
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			defer repo.Close()

			switch repo.(type) {
			case *jsonfile.Repository:
				if !tt.wantJSON {
					t.Errorf("got JSON repository for dsn %q", tt.dsn)
				}
			case *gormdb.TaskRepository:
				if tt.wantJSON {
					t.Errorf("got SQL repository for empty dsn")
				}
			default:
				t.Fatalf("unexpected repository type %T", repo)
			}

			task, _ := domain.NewTask("Write report", time.Unix(1_700_000_000, 0))
			if err := repo.Replace([]*domain.Task{task}); err != nil {
				t.Fatalf("Replace() error: %v", err)
			}
			got, err := repo.Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if len(got) != 1 || got[0].Name != "Write report" {
				t.Errorf("Load() = %v", got)
			}
		})
	}
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	if _, err := Open("redis://localhost:6379", "tasks.json"); err == nil {
		t.Error("expected an error for an unsupported DSN")
	}
}
