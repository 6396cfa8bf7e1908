// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., shopify) inside this directory.
package repository

import (
	"context"

	"customerlist/internal/model"
)

// CustomerRepository reads customer records from their system of record.
// Implementations return either the complete batch or an error, never a partial batch.
type CustomerRepository interface {
	// List returns at most the repository's fixed page size of customers, in source order.
	List(ctx context.Context) ([]model.Customer, error)
}
