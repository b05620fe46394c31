package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/models"
)

func TestQueryBuilder_AddCondition(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("id", "abc")

	assert.Equal(t, "WHERE id = $1", qb.WhereClause())
	assert.Equal(t, []interface{}{"abc"}, qb.Args())
}

func TestQueryBuilder_SetThenWhere(t *testing.T) {
	qb := NewQueryBuilder()

	qb.Set("name", "Buy milk")
	qb.Set("status", "Completed")
	qb.AddCondition("id", "123")

	assert.Equal(t, "SET name = $1, status = $2", qb.SetClause())
	assert.Equal(t, "WHERE id = $3", qb.WhereClause())
	assert.Equal(t, []interface{}{"Buy milk", "Completed", "123"}, qb.Args())
}

func TestQueryBuilder_SetTaskUpdate(t *testing.T) {
	tests := []struct {
		name       string
		update     models.TaskUpdate
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "name only",
			update:     models.TaskUpdate{models.FieldName: "Renamed"},
			wantClause: "SET name = $1",
			wantArgs:   []interface{}{"Renamed"},
		},
		{
			name:       "status only",
			update:     models.TaskUpdate{models.FieldStatus: "Completed"},
			wantClause: "SET status = $1",
			wantArgs:   []interface{}{"Completed"},
		},
		{
			name:       "both in stable order",
			update:     models.TaskUpdate{models.FieldStatus: "Pending", models.FieldName: "x"},
			wantClause: "SET name = $1, status = $2",
			wantArgs:   []interface{}{"x", "Pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := NewQueryBuilder()
			require.NoError(t, qb.SetTaskUpdate(tt.update))
			assert.Equal(t, tt.wantClause, qb.SetClause())
			assert.Equal(t, tt.wantArgs, qb.Args())
		})
	}
}

func TestQueryBuilder_SetTaskUpdate_RejectsUnknownField(t *testing.T) {
	qb := NewQueryBuilder()

	err := qb.SetTaskUpdate(models.TaskUpdate{"done": "true"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not updatable")
}

func TestQueryBuilder_Empty(t *testing.T) {
	qb := NewQueryBuilder()

	assert.Equal(t, "", qb.SetClause())
	assert.Equal(t, "", qb.WhereClause())
	assert.Empty(t, qb.Args())
}
