package core

// IDGenerator produces collision-resistant identifiers for ledger
// entries and prediction jobs
type IDGenerator interface {
	// NewID returns a new unique identifier
	NewID() string
}
