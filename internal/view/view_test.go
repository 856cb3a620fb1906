package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mlefebvre/tasktrack-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(t *testing.T, title string, status domain.TaskStatus, createdAt time.Time) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(uuid.New(), title, "")
	require.NoError(t, err)
	task.Status = status
	task.CreatedAt = createdAt
	return task
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestParseFilterStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   FilterStatus
		wantOK bool
	}{
		{"", FilterStatusAll, true},
		{"all", FilterStatusAll, true},
		{"incomplete", FilterStatusIncomplete, true},
		{"complete", FilterStatusComplete, true},
		{"done", FilterStatusAll, false},
		{"Complete", FilterStatusAll, false},
	}

	for _, tc := range tests {
		got, ok := ParseFilterStatus(tc.raw)
		assert.Equal(t, tc.wantOK, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		raw    string
		want   SortBy
		wantOK bool
	}{
		{"", SortByDate, true},
		{"date", SortByDate, true},
		{"status", SortByStatus, true},
		{"priority", SortByDate, false},
	}

	for _, tc := range tests {
		got, ok := ParseSortBy(tc.raw)
		assert.Equal(t, tc.wantOK, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestFilterByStatusPartitionsList(t *testing.T) {
	now := time.Now().UTC()
	tasks := []*domain.Task{
		newTask(t, "a", domain.TaskStatusIncomplete, now),
		newTask(t, "b", domain.TaskStatusComplete, now),
		newTask(t, "c", domain.TaskStatusIncomplete, now),
		newTask(t, "d", domain.TaskStatusComplete, now),
		newTask(t, "e", domain.TaskStatusComplete, now),
	}

	incomplete := Filter(tasks, Query{Status: FilterStatusIncomplete})
	complete := Filter(tasks, Query{Status: FilterStatusComplete})
	all := Filter(tasks, Query{Status: FilterStatusAll})

	// The two status views partition the full list: nothing lost, nothing
	// duplicated.
	assert.Len(t, all, len(tasks))
	assert.Equal(t, len(tasks), len(incomplete)+len(complete))

	for _, task := range incomplete {
		assert.Equal(t, domain.TaskStatusIncomplete, task.Status)
	}
	for _, task := range complete {
		assert.Equal(t, domain.TaskStatusComplete, task.Status)
	}
}

func TestFilterByCalendarDay(t *testing.T) {
	loc := time.UTC
	day1 := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)
	day2 := time.Date(2025, time.March, 11, 23, 59, 0, 0, loc)

	tasks := []*domain.Task{
		newTask(t, "early", domain.TaskStatusIncomplete, day1),
		// Same calendar day as "early" despite the later clock time.
		newTask(t, "late", domain.TaskStatusComplete, day1.Add(14*time.Hour)),
		newTask(t, "next-day", domain.TaskStatusIncomplete, day2),
	}

	got := Filter(tasks, Query{Date: day1, Location: loc})
	assert.Equal(t, []string{"early", "late"}, titles(got))

	got = Filter(tasks, Query{Date: day2, Location: loc})
	assert.Equal(t, []string{"next-day"}, titles(got))
}

func TestFilterByCalendarDayHonorsLocation(t *testing.T) {
	// 2025-03-10 23:30 UTC is already 2025-03-11 in UTC+5.
	created := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	task := newTask(t, "boundary", domain.TaskStatusIncomplete, created)

	east := time.FixedZone("UTC+5", 5*60*60)
	day11 := time.Date(2025, time.March, 11, 0, 0, 0, 0, east)

	got := Filter([]*domain.Task{task}, Query{Date: day11, Location: east})
	assert.Len(t, got, 1)

	got = Filter([]*domain.Task{task}, Query{Date: day11, Location: time.UTC})
	assert.Empty(t, got)
}

func TestFilterCombinesStatusAndDate(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, time.June, 1, 12, 0, 0, 0, loc)

	tasks := []*domain.Task{
		newTask(t, "match", domain.TaskStatusIncomplete, day),
		newTask(t, "wrong-status", domain.TaskStatusComplete, day),
		newTask(t, "wrong-day", domain.TaskStatusIncomplete, day.AddDate(0, 0, 1)),
	}

	got := Filter(tasks, Query{Status: FilterStatusIncomplete, Date: day, Location: loc})
	assert.Equal(t, []string{"match"}, titles(got))
}

func TestFilterReturnsEmptyNotNil(t *testing.T) {
	got := Filter(nil, Query{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortByDateNewestFirst(t *testing.T) {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		newTask(t, "day1", domain.TaskStatusIncomplete, base),
		newTask(t, "day3", domain.TaskStatusIncomplete, base.AddDate(0, 0, 2)),
		newTask(t, "day2", domain.TaskStatusIncomplete, base.AddDate(0, 0, 1)),
	}

	Sort(tasks, SortByDate)
	assert.Equal(t, []string{"day3", "day2", "day1"}, titles(tasks))
}

func TestSortByStatusIncompleteFirstAndStable(t *testing.T) {
	now := time.Now().UTC()
	tasks := []*domain.Task{
		newTask(t, "a", domain.TaskStatusComplete, now),
		newTask(t, "b", domain.TaskStatusIncomplete, now),
		newTask(t, "c", domain.TaskStatusComplete, now),
		newTask(t, "d", domain.TaskStatusIncomplete, now),
	}

	Sort(tasks, SortByStatus)

	// Incomplete tasks come first; within each group the original order
	// survives: b before d, a before c.
	assert.Equal(t, []string{"b", "d", "a", "c"}, titles(tasks))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		newTask(t, "old", domain.TaskStatusComplete, base),
		newTask(t, "new", domain.TaskStatusIncomplete, base.AddDate(0, 0, 1)),
	}

	got := Apply(tasks, Query{Sort: SortByDate})

	assert.Equal(t, []string{"new", "old"}, titles(got))
	// The input keeps its original order.
	assert.Equal(t, []string{"old", "new"}, titles(tasks))
}

func TestCount(t *testing.T) {
	now := time.Now().UTC()
	tasks := []*domain.Task{
		newTask(t, "a", domain.TaskStatusIncomplete, now),
		newTask(t, "b", domain.TaskStatusComplete, now),
		newTask(t, "c", domain.TaskStatusIncomplete, now),
	}

	c := Count(tasks)
	assert.Equal(t, Counts{Total: 3, Incomplete: 2, Complete: 1}, c)

	assert.Equal(t, Counts{}, Count(nil))
}
