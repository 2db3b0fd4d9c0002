package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLowerTerms(t *testing.T) {
	got := lowerTerms([]string{" React ", "react", "", "  ", "Node.js"})
	assert.Equal(t, []string{"react", "node.js"}, got)
	assert.Empty(t, lowerTerms(nil))
}

func TestNullTime(t *testing.T) {
	assert.Nil(t, nullTime(time.Time{}))

	now := time.Now()
	got := nullTime(now)
	if assert.NotNil(t, got) {
		assert.True(t, got.Equal(now))
	}
}
