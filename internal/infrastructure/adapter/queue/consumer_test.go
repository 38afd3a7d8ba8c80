package queue

import (
	"testing"

	"github.com/dlevina/prediction-billing/internal/infrastructure/config"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
)

func TestConsumerClose(t *testing.T) {
	t.Run("should be safe to call repeatedly", func(t *testing.T) {
		// The logger mock has no expectations, so any close warning
		// fails the test
		logger := coremocks.NewMockLogger(t)
		c := NewConsumer(config.QueueConfig{}, nil, logger)

		c.Close()
		c.Close()
	})
}
