// Package store persists generated floor plans.
//
// Three backends implement [Store]: an in-memory map for tests and
// single-process use, Redis for shared ephemeral storage, and MongoDB for
// durable storage. The backend is selected by configuration; see
// [github.com/jwinther/homeplan/pkg/config].
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// Record is a stored plan with its identity and provenance. The engine's
// Plan type is pure and carries no ID or timestamp; the store wraps it.
type Record struct {
	ID          string                         `json:"id" bson:"_id"`
	CreatedAt   time.Time                      `json:"created_at" bson:"created_at"`
	Description string                         `json:"description,omitempty" bson:"description,omitempty"`
	Requirement requirements.HouseRequirements `json:"requirements" bson:"requirements"`
	Plan        plan.Plan                      `json:"plan" bson:"plan"`
}

// NewRecord wraps a generated plan in a record with a fresh UUID and the
// current UTC time.
func NewRecord(description string, req requirements.HouseRequirements, p plan.Plan) Record {
	return Record{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Description: description,
		Requirement: req,
		Plan:        p,
	}
}

// Store persists plan records.
type Store interface {
	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get returns the record with the given ID, or an error with code
	// [errors.ErrCodePlanNotFound].
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes the record with the given ID. Deleting a missing
	// record returns [errors.ErrCodePlanNotFound].
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
}
