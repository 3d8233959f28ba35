package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

const secondsPerDay = 24 * 60 * 60

// ErrEmptyTaskName is returned when a task name is blank after trimming.
var ErrEmptyTaskName = errors.New("task name is empty")

// Task 一条任务记录
type Task struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"` // Unix 秒
}

// NewTask trims name and stamps it with now.
func NewTask(name string, now time.Time) (*Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTaskName
	}
	return &Task{Name: name, Timestamp: now.Unix()}, nil
}

// StartOfDay returns the UTC midnight at or before unixSeconds.
func StartOfDay(unixSeconds int64) int64 {
	return unixSeconds - unixSeconds%secondsPerDay
}

// KeepSince returns the tasks whose timestamp is at or after since.
func KeepSince(tasks []*Task, since int64) []*Task {
	return lo.Filter(tasks, func(t *Task, _ int) bool {
		return t.Timestamp >= since
	})
}

// SearchNames returns the distinct task names containing query, ignoring
// case. Exact matches come first, then prefix matches, then the rest, each
// group in lexical order.
func SearchNames(tasks []*Task, query string) []string {
	q := strings.ToLower(query)

	names := lo.Uniq(lo.FilterMap(tasks, func(t *Task, _ int) (string, bool) {
		return t.Name, strings.Contains(strings.ToLower(t.Name), q)
	}))

	rank := func(name string) int {
		n := strings.ToLower(name)
		switch {
		case n == q:
			return 0
		case strings.HasPrefix(n, q):
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}
