package store

import (
	"time"

	"github.com/google/uuid"
)

// Run is one row of curation_runs
type Run struct {
	ID         uuid.UUID `json:"id"`
	JobTitle   string    `json:"job_title"`
	LineBudget int       `json:"line_budget"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
