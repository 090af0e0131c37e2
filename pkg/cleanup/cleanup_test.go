package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/healthlog/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := make([]string, 0)
	cleanup.Register(&cleanup.Job{Name: "metrics", F: func() error {
		order = append(order, "metrics")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "server", F: func() error {
		order = append(order, "server")
		return errors.New("already closed")
	}})

	assert.Equal(t, 1, cleanup.CleanUp())
	assert.Equal(t, []string{"server", "metrics"}, order)
	assert.Equal(t, 0, cleanup.CleanUp(), "jobs run once")
}
