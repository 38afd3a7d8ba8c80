package idgen

import (
	"github.com/google/uuid"

	"github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// UUIDGenerator implements the IDGenerator interface with random UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-based ID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
