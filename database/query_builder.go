package database

import (
	"fmt"
	"strings"

	"taskboard/models"
)

const (
	columnID        = "id"
	columnProjectID = "project_id"
	columnName      = "name"
	columnStatus    = "status"
)

// updatableTaskColumns limits which columns a partial update may write.
var updatableTaskColumns = map[models.TaskField]string{
	models.FieldName:   columnName,
	models.FieldStatus: columnStatus,
}

// QueryBuilder accumulates SET assignments and WHERE conditions with
// sequential $N placeholders. Only column names from this package reach the
// SQL text; every value is passed as an argument.
type QueryBuilder struct {
	assignments []string
	conditions  []string
	args        []interface{}
	argCount    int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		assignments: []string{},
		conditions:  []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

func (qb *QueryBuilder) Set(column string, value interface{}) {
	qb.assignments = append(qb.assignments, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// SetTaskUpdate adds one assignment per field of u, in the update's stable order.
func (qb *QueryBuilder) SetTaskUpdate(u models.TaskUpdate) error {
	for field := range u {
		if _, ok := updatableTaskColumns[field]; !ok {
			return fmt.Errorf("field %q is not updatable", field)
		}
	}
	for _, a := range u.Assignments() {
		qb.Set(updatableTaskColumns[a.Field], a.Value)
	}
	return nil
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

func (qb *QueryBuilder) SetClause() string {
	if len(qb.assignments) == 0 {
		return ""
	}
	return "SET " + strings.Join(qb.assignments, ", ")
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}
