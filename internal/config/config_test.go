package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("token from environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_test")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "ghp_test", cfg.Token)
	})

	t.Run("missing token is an error", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")

		cfg, err := Load()

		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Nil(t, cfg)
	})
}
