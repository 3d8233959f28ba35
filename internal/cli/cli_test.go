package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awsl-project/entrainde/internal/config"
)

func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--data", dataDir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTasksCommands(t *testing.T) {
	t.Setenv(config.DSNEnv, "")
	dir := t.TempDir()

	out, err := run(t, dir, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No tasks") {
		t.Errorf("empty list output = %q", out)
	}

	for _, name := range []string{"Write report", "Review PR", "Write tests"} {
		if _, err := run(t, dir, "tasks", "add", name); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, config.TasksFileName)); err != nil {
		t.Fatalf("tasks file not written: %v", err)
	}

	out, err = run(t, dir, "tasks", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, name := range []string{"Write report", "Review PR", "Write tests"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %q: %q", name, out)
		}
	}

	out, err = run(t, dir, "tasks", "search", "write")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Write report") || !strings.Contains(out, "Write tests") || strings.Contains(out, "Review PR") {
		t.Errorf("search output = %q", out)
	}

	// Everything was added today, so cleanup keeps it all.
	out, err = run(t, dir, "tasks", "cleanup")
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if !strings.Contains(out, "0 task(s)") {
		t.Errorf("cleanup output = %q", out)
	}

	out, err = run(t, dir, "tasks", "clear")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !strings.Contains(out, "3 task(s)") {
		t.Errorf("clear output = %q", out)
	}

	out, _ = run(t, dir, "tasks", "list")
	if !strings.Contains(out, "No tasks") {
		t.Errorf("list after clear = %q", out)
	}
}

func TestTasksAddRejectsBlankName(t *testing.T) {
	t.Setenv(config.DSNEnv, "")
	if _, err := run(t, t.TempDir(), "tasks", "add", "   "); err == nil {
		t.Error("expected an error for a blank task name")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "Entrainde") {
		t.Errorf("version output = %q", out)
	}
}

func TestSettingsCommands(t *testing.T) {
	t.Setenv(config.DSNEnv, "")
	dir := t.TempDir()

	out, err := run(t, dir, "settings")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !strings.Contains(out, "debounce") {
		t.Errorf("settings output = %q", out)
	}

	if _, err := run(t, dir, "settings", "set", "tray.click_policy", "toggle"); err != nil {
		t.Fatalf("settings set: %v", err)
	}
	s, err := config.LoadFile(dir)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Tray.ClickPolicy != "toggle" {
		t.Errorf("saved click_policy = %q, want toggle", s.Tray.ClickPolicy)
	}

	if _, err := run(t, dir, "settings", "set", "tray.anchor", "middle"); err == nil {
		t.Error("expected an error for an invalid anchor")
	}
	if _, err := os.Stat(filepath.Join(dir, config.SettingsFileName)); err != nil {
		t.Errorf("settings file missing: %v", err)
	}
}
