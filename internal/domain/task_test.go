package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	task, err := NewTask("  Réunion équipe  ", now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Name != "Réunion équipe" || task.Timestamp != 1_700_000_000 {
		t.Errorf("NewTask() = %+v", task)
	}

	if _, err := NewTask("   ", now); !errors.Is(err, ErrEmptyTaskName) {
		t.Errorf("NewTask(blank) error = %v, want ErrEmptyTaskName", err)
	}
}

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int64
	}{
		{"midnight", 1_700_006_400, 1_700_006_400},
		{"one second later", 1_700_006_401, 1_700_006_400},
		{"last second of day", 1_700_092_799, 1_700_006_400},
		{"epoch", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfDay(tt.in); got != tt.want {
				t.Errorf("StartOfDay(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeepSince(t *testing.T) {
	tasks := []*Task{
		{Name: "old", Timestamp: 99},
		{Name: "edge", Timestamp: 100},
		{Name: "new", Timestamp: 150},
	}

	got := KeepSince(tasks, 100)
	if len(got) != 2 || got[0].Name != "edge" || got[1].Name != "new" {
		t.Errorf("KeepSince() = %v", got)
	}
}

func TestSearchNames(t *testing.T) {
	tasks := []*Task{
		{Name: "Code review"},
		{Name: "code"},
		{Name: "Décoder logs"},
		{Name: "Unicode fix"},
		{Name: "code"},
		{Name: "Coffee"},
		{Name: "Codex setup"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact then prefix then contains", "code", []string{"code", "Code review", "Codex setup", "Décoder logs", "Unicode fix"}},
		{"case insensitive", "COFF", []string{"Coffee"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchNames(tasks, tt.query)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchNames(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
