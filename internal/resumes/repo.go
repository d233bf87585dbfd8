package resumes

import "context"

// Repo persists analysis records.
type Repo interface {
	// Create stores the record and returns it with the storage-assigned
	// creation timestamp.
	Create(ctx context.Context, record Resume) (Resume, error)
	// ListAll returns all records, most recent first.
	ListAll(ctx context.Context) ([]Resume, error)
}
