package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"taskboard/models"
)

const projectColumns = "id, name"

// CreateProject inserts a project with a freshly generated id.
// The name is stored as given, including the empty string.
func (db *DB) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	query := `INSERT INTO projects (id, name) VALUES ($1, $2) RETURNING ` + projectColumns

	rows, _ := db.Pool.Query(ctx, query, uuid.New(), name)
	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	db.logger.Debug("Created project", "project_id", project.ID, "name", project.Name)
	return project, nil
}

// ListProjects returns every project. No ordering is guaranteed.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, _ := db.Pool.Query(ctx, `SELECT `+projectColumns+` FROM projects`)
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	rows, _ := db.Pool.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, projectID)
	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound("project", projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project; the foreign key cascades to its tasks.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return newNotFound("project", projectID)
	}

	db.logger.Debug("Deleted project", "project_id", projectID)
	return nil
}
