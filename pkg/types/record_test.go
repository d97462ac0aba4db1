package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChecklistRecord(t *testing.T) {
	before := time.Now().UnixMilli()
	r := NewChecklistRecord("Groceries", []string{"Milk", "Eggs"})
	after := time.Now().UnixMilli()

	assert.Zero(t, r.ID, "id is assigned on save, not construction")
	assert.Equal(t, "Groceries", r.Title)
	assert.Equal(t, []string{"Milk", "Eggs"}, r.Tasks)
	assert.Equal(t, []string{}, r.Done)
	assert.False(t, r.Complete)
	assert.GreaterOrEqual(t, r.Time, before)
	assert.LessOrEqual(t, r.Time, after)
}

func TestNewChecklistRecordNilTasks(t *testing.T) {
	r := NewChecklistRecord("Empty", nil)

	// Both slices must marshal as [], never null.
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tasks":[]`)
	assert.Contains(t, string(raw), `"done":[]`)
}

func TestChecklistRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  ChecklistRecord
		wantErr error
	}{
		{
			name:   "valid saved record",
			record: ChecklistRecord{ID: 1, Title: "Groceries", Tasks: []string{"Milk"}, Done: []string{"Milk"}},
		},
		{
			name:   "valid unsaved record",
			record: ChecklistRecord{Title: "Groceries"},
		},
		{
			name:    "negative id rejected",
			record:  ChecklistRecord{ID: -1, Title: "Groceries"},
			wantErr: ErrInvalidID,
		},
		{
			name:    "empty title rejected",
			record:  ChecklistRecord{ID: 1},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "done outside tasks rejected",
			record:  ChecklistRecord{ID: 1, Title: "Groceries", Tasks: []string{"Milk"}, Done: []string{"Eggs"}},
			wantErr: ErrDoneNotSubset,
		},
		{
			name:   "empty done always valid",
			record: ChecklistRecord{ID: 1, Title: "Groceries", Done: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChecklistRecordRename(t *testing.T) {
	r := NewChecklistRecord("Groceries", nil)

	err := r.Rename("Errands")
	assert.NoError(t, err)
	assert.Equal(t, "Errands", r.Title)

	err = r.Rename("")
	assert.ErrorIs(t, err, ErrInvalidTitle)
	assert.Equal(t, "Errands", r.Title, "title should not change on error")
}

func TestChecklistRecordAddTask(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []string
		task    string
		wantErr error
		want    []string
	}{
		{
			name:  "append to empty list",
			tasks: []string{},
			task:  "Milk",
			want:  []string{"Milk"},
		},
		{
			name:  "append preserves order",
			tasks: []string{"Milk", "Eggs"},
			task:  "Bread",
			want:  []string{"Milk", "Eggs", "Bread"},
		},
		{
			name:    "empty task rejected",
			tasks:   []string{"Milk"},
			task:    "",
			wantErr: ErrInvalidTask,
		},
		{
			name:    "duplicate task rejected",
			tasks:   []string{"Milk", "Eggs"},
			task:    "Milk",
			wantErr: ErrDuplicateTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewChecklistRecord("Groceries", tt.tasks)

			err := r.AddTask(tt.task)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.tasks, r.Tasks, "tasks should not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, r.Tasks)
			}
		})
	}
}

func TestChecklistRecordRemoveTask(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []string
		done     []string
		task     string
		wantErr  error
		want     []string
		wantDone []string
	}{
		{
			name:     "remove undone task",
			tasks:    []string{"Milk", "Eggs"},
			done:     []string{},
			task:     "Milk",
			want:     []string{"Eggs"},
			wantDone: []string{},
		},
		{
			name:     "remove done task prunes done",
			tasks:    []string{"Milk", "Eggs"},
			done:     []string{"Milk"},
			task:     "Milk",
			want:     []string{"Eggs"},
			wantDone: []string{},
		},
		{
			name:    "missing task rejected",
			tasks:   []string{"Milk"},
			done:    []string{},
			task:    "Eggs",
			wantErr: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ChecklistRecord{Title: "Groceries", Tasks: tt.tasks, Done: tt.done}

			err := r.RemoveTask(tt.task)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.tasks, r.Tasks, "tasks should not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, r.Tasks)
				assert.Equal(t, tt.wantDone, r.Done)
				assert.NoError(t, r.Validate(), "subset invariant must survive removal")
			}
		})
	}
}

func TestChecklistRecordToggleTask(t *testing.T) {
	r := NewChecklistRecord("Groceries", []string{"Milk", "Eggs"})

	require.NoError(t, r.ToggleTask("Milk"))
	assert.True(t, r.IsDone("Milk"))
	assert.False(t, r.IsDone("Eggs"))

	require.NoError(t, r.ToggleTask("Milk"))
	assert.False(t, r.IsDone("Milk"))

	err := r.ToggleTask("Bread")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestChecklistRecordSetComplete(t *testing.T) {
	r := NewChecklistRecord("Groceries", []string{"Milk", "Eggs"})
	require.NoError(t, r.ToggleTask("Milk"))

	r.SetComplete()

	assert.True(t, r.Complete)
	assert.Equal(t, []string{"Milk", "Eggs"}, r.Done, "complete marks every task done")

	// Done is a copy; later task edits must not alias it.
	require.NoError(t, r.AddTask("Bread"))
	assert.Equal(t, []string{"Milk", "Eggs"}, r.Done)
}

func TestChecklistRecordClone(t *testing.T) {
	r := NewChecklistRecord("Groceries", []string{"Milk", "Eggs"})
	require.NoError(t, r.ToggleTask("Milk"))

	c := r.Clone()
	assert.Equal(t, r, c)

	require.NoError(t, c.AddTask("Bread"))
	require.NoError(t, c.ToggleTask("Eggs"))
	c.Title = "Errands"

	assert.Equal(t, "Groceries", r.Title)
	assert.Equal(t, []string{"Milk", "Eggs"}, r.Tasks)
	assert.Equal(t, []string{"Milk"}, r.Done)
}

func TestChecklistRecordJSONShape(t *testing.T) {
	r := ChecklistRecord{
		ID:       1,
		Title:    "Groceries",
		Time:     1000,
		Tasks:    []string{"Milk", "Eggs"},
		Done:     []string{},
		Complete: false,
		Rev:      3,
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"title":"Groceries","time":1000,"tasks":["Milk","Eggs"],"done":[],"complete":false,"rev":3}`,
		string(raw))
}
