package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPastDue(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, IsPastDue(now.AddDate(0, 0, -2)))
	assert.False(t, IsPastDue(now))
	assert.False(t, IsPastDue(now.AddDate(0, 0, 30)))
}

func TestRefName(t *testing.T) {
	assert.Equal(t, "", RefName(nil))
	assert.Equal(t, "Jane Doe", RefName(&Ref{ID: "c1", Name: "Jane Doe"}))
}
