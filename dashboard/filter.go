package dashboard

import (
	"fmt"
	"strings"

	"taskboard/models"
)

// Filter selects which tasks of the current project are shown.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return Filter((int(f) + 1) % len(Filters))
}

// ParseFilter accepts a filter name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q", s)
}

// Match reports whether t belongs in the filtered view. Only the literal
// Completed status counts as done.
func (f Filter) Match(t models.TaskView) bool {
	switch f {
	case FilterActive:
		return !t.Status.Done()
	case FilterCompleted:
		return t.Status.Done()
	default:
		return true
	}
}

// FilterTasks returns the tasks matching f, preserving order.
func FilterTasks(tasks []models.TaskView, f Filter) []models.TaskView {
	out := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// EmptyMessage is shown when the filtered view has no rows. total is the
// number of tasks before filtering.
func EmptyMessage(f Filter, total int) string {
	if total == 0 {
		return "You are all caught up!"
	}
	return fmt.Sprintf("You don't have any %s tasks", strings.ToLower(f.String()))
}
