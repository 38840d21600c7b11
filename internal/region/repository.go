package region

import "context"

// Repository defines persistence for regions.
type Repository interface {
	// List returns all regions ordered by ID.
	List(ctx context.Context) ([]Region, error)

	// InsertIfAbsent inserts a region, leaving any existing row
	// with the same ID untouched.
	InsertIfAbsent(ctx context.Context, r Region) error
}
