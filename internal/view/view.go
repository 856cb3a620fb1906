// Package view builds presentation-ready projections of a user's task list.
// It is purely computational: filtering and sorting never touch storage and
// never mutate the tasks they are given, so the same raw list can back
// multiple concurrent views.
package view

import (
	"sort"
	"time"

	"github.com/mlefebvre/tasktrack-api/internal/domain"
)

// FilterStatus selects which task statuses a view includes.
type FilterStatus string

const (
	// FilterStatusAll includes every task regardless of status.
	FilterStatusAll FilterStatus = "all"
	// FilterStatusIncomplete includes only tasks still to be done.
	FilterStatusIncomplete FilterStatus = "incomplete"
	// FilterStatusComplete includes only finished tasks.
	FilterStatusComplete FilterStatus = "complete"
)

// SortBy selects the ordering applied to a view.
type SortBy string

const (
	// SortByDate orders tasks newest-first by creation time.
	SortByDate SortBy = "date"
	// SortByStatus orders incomplete tasks before complete ones, preserving
	// the relative order of tasks with equal status.
	SortByStatus SortBy = "status"
)

// ParseFilterStatus maps a query-string value to a FilterStatus.
// An empty value means no status filtering.
func ParseFilterStatus(raw string) (FilterStatus, bool) {
	switch FilterStatus(raw) {
	case "", FilterStatusAll:
		return FilterStatusAll, true
	case FilterStatusIncomplete:
		return FilterStatusIncomplete, true
	case FilterStatusComplete:
		return FilterStatusComplete, true
	default:
		return FilterStatusAll, false
	}
}

// ParseSortBy maps a query-string value to a SortBy.
// An empty value defaults to date ordering.
func ParseSortBy(raw string) (SortBy, bool) {
	switch SortBy(raw) {
	case "", SortByDate:
		return SortByDate, true
	case SortByStatus:
		return SortByStatus, true
	default:
		return SortByDate, false
	}
}

// Query describes one view over a task list. The zero value of each field
// disables that aspect: FilterStatusAll keeps every status, a zero Date skips
// date filtering, and an empty SortBy falls back to date ordering.
type Query struct {
	Status FilterStatus
	// Date restricts the view to tasks created on the same calendar day,
	// evaluated in Location.
	Date time.Time
	// Location is the timezone used to compare calendar days. Nil means the
	// server's local timezone.
	Location *time.Location
	Sort     SortBy
}

// Apply filters and sorts tasks according to the query and returns a new
// slice. The input slice and the tasks it points to are left untouched.
func Apply(tasks []*domain.Task, q Query) []*domain.Task {
	out := Filter(tasks, q)
	Sort(out, q.Sort)
	return out
}

// Filter returns the tasks matching the query's status and date predicates.
// Both predicates must hold for a task to be included. The result is always a
// fresh slice, empty rather than nil when nothing matches.
func Filter(tasks []*domain.Task, q Query) []*domain.Task {
	loc := q.Location
	if loc == nil {
		loc = time.Local
	}

	out := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesStatus(task, q.Status) {
			continue
		}
		if !q.Date.IsZero() && !sameCalendarDay(task.CreatedAt, q.Date, loc) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// Sort orders tasks in place according to by. Both orderings are stable, so
// tasks that compare equal keep their relative positions.
func Sort(tasks []*domain.Task, by SortBy) {
	switch by {
	case SortByStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			return statusRank(tasks[i].Status) < statusRank(tasks[j].Status)
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

// Counts summarizes a task list for display next to the filtered view.
type Counts struct {
	Total      int `json:"total"`
	Incomplete int `json:"incomplete"`
	Complete   int `json:"complete"`
}

// Count tallies tasks by status.
func Count(tasks []*domain.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, task := range tasks {
		if task.Status == domain.TaskStatusComplete {
			c.Complete++
		} else {
			c.Incomplete++
		}
	}
	return c
}

func matchesStatus(task *domain.Task, status FilterStatus) bool {
	switch status {
	case FilterStatusIncomplete:
		return task.Status == domain.TaskStatusIncomplete
	case FilterStatusComplete:
		return task.Status == domain.TaskStatusComplete
	default:
		return true
	}
}

// statusRank puts incomplete tasks ahead of complete ones.
func statusRank(s domain.TaskStatus) int {
	if s == domain.TaskStatusIncomplete {
		return 0
	}
	return 1
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
