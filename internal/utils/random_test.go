package utils

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRideID_Format(t *testing.T) {
	before := time.Now().UnixMilli()
	id := GenerateRideID()
	after := time.Now().UnixMilli()

	parts := strings.SplitN(id, "-", 2)
	require.Len(t, parts, 2)

	millis, err := strconv.ParseInt(parts[0], 36, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)

	raw, err := hex.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, raw, RideIDRandomBytes)
}

func TestGenerateRideID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateRideID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSecureRandomInt_Bounds(t *testing.T) {
	for max := 1; max <= 5; max++ {
		for i := 0; i < 100; i++ {
			n := SecureRandomInt(max)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, max)
		}
	}
}
