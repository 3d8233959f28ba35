package desktop

import (
	"errors"
	"testing"

	"github.com/awsl-project/entrainde/internal/visibility"
)

func TestMainWindowBeforeAttach(t *testing.T) {
	w := NewMainWindow(AnchorTopRight, true)

	if _, err := w.IsVisible(); !errors.Is(err, ErrWindowNotReady) {
		t.Errorf("IsVisible() error = %v, want ErrWindowNotReady", err)
	}
	for name, step := range map[string]func() error{
		"MoveToTray": w.MoveToTray,
		"Unminimise": w.Unminimise,
		"Show":       w.Show,
		"Focus":      w.Focus,
		"Hide":       w.Hide,
	} {
		if err := step(); !errors.Is(err, ErrWindowNotReady) {
			t.Errorf("%s() error = %v, want ErrWindowNotReady", name, err)
		}
	}
}

func TestMainWindowDestroy(t *testing.T) {
	w := NewMainWindow(AnchorTopRight, true)

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := w.Destroy(); err != nil {
		t.Fatalf("second Destroy() error = %v", err)
	}
	if !w.Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}

	obs := visibility.Observe(w)
	if got := visibility.DeriveState(obs); got != visibility.StateDestroyed {
		t.Errorf("state = %v, want destroyed", got)
	}
	if err := w.Show(); !errors.Is(err, visibility.ErrWindowNotFound) {
		t.Errorf("Show() after destroy error = %v, want ErrWindowNotFound", err)
	}
}

func TestPickScreen(t *testing.T) {
	primary := screenInfo{primary: true, width: 1920, height: 1080}
	current := screenInfo{current: true, width: 2560, height: 1440}
	other := screenInfo{width: 1280, height: 720}

	tests := []struct {
		name    string
		screens []screenInfo
		want    int
		ok      bool
	}{
		{"current wins", []screenInfo{primary, current}, 2560, true},
		{"primary fallback", []screenInfo{other, primary}, 1920, true},
		{"first fallback", []screenInfo{other}, 1280, true},
		{"none", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickScreen(tt.screens)
			if ok != tt.ok || got.width != tt.want {
				t.Errorf("pickScreen() = %d, %v; want %d, %v", got.width, ok, tt.want, tt.ok)
			}
		})
	}
}
