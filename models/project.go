package models

import (
	"github.com/google/uuid"
)

// Project is a named container that owns a set of tasks.
// Deleting a project removes its tasks through the store's cascading foreign key.
type Project struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// CreateProjectRequest is the payload for creating a new project.
// The server stores the name as sent; blank names are filtered by the dashboard only.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// MessageResponse is the confirmation body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
