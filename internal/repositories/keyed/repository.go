// Package keyed provides a generic Redis-backed repository for entity tables
// that only need primary-key access. Each table stores one JSON row per key
// under a fixed prefix.
package keyed

import (
	"context"
)

// Repository stores rows of type T keyed by a positive integer ID.
type Repository[T any] interface {
	// Upsert writes the row for input.ID, replacing any previous value.
	// Returns errors.InvalidArgument if the ID is not positive
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput[T]) (*UpsertOutput, error)

	// UpsertAll writes a batch of rows in one round trip.
	// Returns errors.InvalidArgument for empty batches or non-positive IDs
	UpsertAll(ctx context.Context, input UpsertAllInput[T]) (*UpsertAllOutput, error)

	// Get returns the row stored for input.ID.
	// Returns errors.NotFound if no row is cached for the ID
	Get(ctx context.Context, input GetInput) (*GetOutput[T], error)

	// Delete removes the row for input.ID. Deleting a missing row is not
	// an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// UpsertInput defines the input for writing one row
type UpsertInput[T any] struct {
	ID  int
	Row T
}

// UpsertOutput defines the output for writing one row
type UpsertOutput struct{}

// UpsertAllInput defines the input for writing a batch of rows
type UpsertAllInput[T any] struct {
	Rows map[int]T
}

// UpsertAllOutput defines the output for writing a batch of rows
type UpsertAllOutput struct{}

// GetInput defines the input for reading one row
type GetInput struct {
	ID int
}

// GetOutput defines the output for reading one row
type GetOutput[T any] struct {
	Row T
}

// DeleteInput defines the input for removing one row
type DeleteInput struct {
	ID int
}

// DeleteOutput defines the output for removing one row
type DeleteOutput struct{}
