package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/pointseed/internal/apperrors"
)

func Test_run(t *testing.T) {
	noenv := func(string) string { return "" }

	runIn := func(t *testing.T, args ...string) (string, string, error) {
		t.Helper()

		dir := t.TempDir()
		getwd := func() (string, error) { return dir, nil }

		var stdout bytes.Buffer
		err := run(context.Background(), noenv, getwd, append([]string{"--output-dir", dir, "--log-level", "error"}, args...), &stdout)
		return dir, stdout.String(), err
	}

	t.Run("writes file per profile", func(t *testing.T) {
		tests := []struct {
			profile  string
			fileName string
			database string
		}{
			{"realistic", "insert_realistic_data.sql", "USE points_app_dev;"},
			{"wxpay", "insert_merchants_orders_points.sql", "USE weixin_payment;"},
		}

		for _, tt := range tests {
			t.Run(tt.profile, func(t *testing.T) {
				dir, stdout, err := runIn(t, "--profile", tt.profile, "--seed", "42")
				require.NoError(t, err)

				content, err := os.ReadFile(filepath.Join(dir, tt.fileName))
				require.NoError(t, err, "sql file must be written")
				require.Contains(t, string(content), tt.database)
				require.Contains(t, string(content), "(seed 42)")

				require.Contains(t, stdout, "✓ generated 100 users")
				require.Contains(t, stdout, "Statistics:")
			})
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		dir, _, err := runIn(t, "--profile", "mystery")
		require.ErrorIs(t, err, apperrors.ErrUnknownProfile)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, entries, "nothing must be written on failure")
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		_, _, err := runIn(t, "extra")
		require.Error(t, err)
	})

	t.Run("invalid environment", func(t *testing.T) {
		_, _, err := runIn(t, "--environment", "staging")
		require.Error(t, err)
	})
}
