package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClaimID(t *testing.T) {
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	id := NewClaimID(now)
	assert.True(t, strings.HasPrefix(id, "CLM-"))
	assert.LessOrEqual(t, len(id), claimIdMaxLength)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestNewClaimID_unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for range 1000 {
		id := NewClaimID(now)
		assert.False(t, seen[id], "duplicate claim id %s", id)
		seen[id] = true
	}
}
