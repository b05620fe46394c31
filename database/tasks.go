package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"taskboard/models"
)

// A NULL status reads as Pending, matching the column default.
const taskColumns = "id, project_id, name, COALESCE(status, 'Pending') AS status"

// CreateTask inserts a task under projectID. The request must already be
// normalized. A missing project surfaces as a NotFoundError for "project",
// whether caught by the caller's existence check or by the foreign key.
func (db *DB) CreateTask(ctx context.Context, projectID uuid.UUID, req models.CreateTaskRequest) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, project_id, name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + taskColumns

	rows, _ := db.Pool.Query(ctx, query, uuid.New(), projectID, req.Name, string(req.Status))
	task, err := collectTask(rows)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, newNotFound("project", projectID)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	db.logger.Debug("Created task", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// ListTasksByProject returns every task of one project. It does not check
// that the project exists; callers do that first.
func (db *DB) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	qb := NewQueryBuilder()
	qb.AddCondition(columnProjectID, projectID)

	query := `SELECT ` + taskColumns + ` FROM tasks ` + qb.WhereClause()

	rows, _ := db.Pool.Query(ctx, query, qb.Args()...)
	return collectTasks(rows)
}

// ListTasks returns every task across all projects.
func (db *DB) ListTasks(ctx context.Context) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`

	rows, _ := db.Pool.Query(ctx, query)
	return collectTasks(rows)
}

func (db *DB) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	rows, _ := db.Pool.Query(ctx, query, taskID)
	task, err := collectTask(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound("task", taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// UpdateTask writes only the fields present in u in a single statement and
// returns the updated row.
func (db *DB) UpdateTask(ctx context.Context, taskID uuid.UUID, u models.TaskUpdate) (*models.Task, error) {
	if len(u) == 0 {
		return nil, models.ErrEmptyUpdate
	}

	qb := NewQueryBuilder()
	if err := qb.SetTaskUpdate(u); err != nil {
		return nil, err
	}
	qb.AddCondition(columnID, taskID)

	// SAFETY: SetClause and WhereClause only contain column names from this
	// package; all values are parameterized.
	query := fmt.Sprintf(`UPDATE tasks %s %s RETURNING %s`,
		qb.SetClause(), qb.WhereClause(), taskColumns)

	rows, _ := db.Pool.Query(ctx, query, qb.Args()...)
	task, err := collectTask(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound("task", taskID)
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	db.logger.Debug("Updated task", "task_id", taskID, "fields", len(u))
	return task, nil
}

func (db *DB) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return newNotFound("task", taskID)
	}

	db.logger.Debug("Deleted task", "task_id", taskID)
	return nil
}

// collectTask reads exactly one task. Query errors surface through the rows,
// so callers ignore the error from Pool.Query and check this one.
func collectTask(rows pgx.Rows) (*models.Task, error) {
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Task])
}

func collectTasks(rows pgx.Rows) ([]models.Task, error) {
	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Task])
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
