package config_test

import (
	"testing"

	"github.com/limbo/healthlog/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("HEALTHLOG_TEST_ADDR", " :9090 ")
	t.Setenv("HEALTHLOG_TEST_WORKERS", "8")
	t.Setenv("HEALTHLOG_TEST_BROKEN", "eight")

	assert.Equal(t, ":9090", cfg.GetStringOr("HEALTHLOG_TEST_ADDR", ":8080"))
	assert.Equal(t, ":8080", cfg.GetStringOr("HEALTHLOG_TEST_MISSING", ":8080"))
	assert.Equal(t, 8, cfg.GetInt("HEALTHLOG_TEST_WORKERS", 4))
	assert.Equal(t, 4, cfg.GetInt("HEALTHLOG_TEST_BROKEN", 4))
	assert.Equal(t, 4, cfg.GetInt("HEALTHLOG_TEST_MISSING", 4))
	assert.Same(t, cfg, config.New())
}
