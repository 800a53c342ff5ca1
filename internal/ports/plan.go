package ports

import "resprune/internal/domain"

// DeletionPlan collects file mutations during analysis and applies them
// once every index session of the run is closed.
type DeletionPlan interface {
	// Remove schedules path for deletion
	Remove(path string)

	// Replace schedules tempPath to be renamed over path
	Replace(path, tempPath string)

	// Commit applies every staged operation
	Commit() error

	// Discard drops staged operations and their temporary files
	Discard()
}

// ReviewablePlan is a DeletionPlan whose staged operations can be listed and
// pruned before Commit.
type ReviewablePlan interface {
	DeletionPlan

	// Entries returns the staged operations in staging order
	Entries() []domain.PlanEntry

	// Exclude drops every staged operation on path
	Exclude(path string)
}
