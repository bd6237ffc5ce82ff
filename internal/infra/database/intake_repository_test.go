package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictTargetIsNullSafe(t *testing.T) {
	// A bare (email, meeting_time) target would let NULL meeting times
	// pile up duplicate rows, since NULLs never conflict in Postgres.
	assert.Contains(t, conflictTarget, "COALESCE(meeting_time")
	assert.Contains(t, conflictTarget, "'epoch'::timestamptz")
}

func TestConflictTargetMatchesMigration(t *testing.T) {
	migration, err := os.ReadFile("../../../migrations/001_intake_entries.sql")
	require.NoError(t, err)

	assert.Contains(t, string(migration), conflictTarget)
}
