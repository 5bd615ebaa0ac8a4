package utils

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	d, err := ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-05-01T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Hour())

	_, err = ParseDate("05/01/2026")
	assert.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	d := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-05-01", FormatDate(d))
	assert.Equal(t, "2026-05-01T08:30:00Z", FormatTimestamp(d))
}

func TestUserIDContextRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
