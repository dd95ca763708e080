package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingIDFormat(t *testing.T) {
	trackingId := GenerateTrackingID(time.Now().UnixMilli())

	assert.True(t, strings.HasPrefix(trackingId, "TRX-"))
	parts := strings.Split(trackingId, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 10)
	assert.Equal(t, strings.ToUpper(trackingId), trackingId)
}

func TestGenerateTrackingIDUniqueness(t *testing.T) {
	const n = 2000
	now := time.Now().UnixMilli()

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		// Same millisecond on purpose: the random suffix alone must
		// keep ids distinct.
		trackingId := GenerateTrackingID(now)
		_, dup := seen[trackingId]
		require.False(t, dup, "duplicate tracking id %s", trackingId)
		seen[trackingId] = struct{}{}
	}
}

func TestGenerateTrackingIDNotSequential(t *testing.T) {
	a := GenerateTrackingID(time.Now().UnixMilli())
	b := GenerateTrackingID(time.Now().UnixMilli())

	assert.NotEqual(t, a, b)
	// Suffixes must not share a predictable relationship.
	assert.NotEqual(t, a[len(a)-10:], b[len(b)-10:])
}
