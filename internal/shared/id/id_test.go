package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsTimeOrderedUUID(t *testing.T) {
	first := New()
	second := New()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first[:8], second[:8])
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F3A4-5C6B-7D8E-9F01-23456789ABCD")
	require.NoError(t, err)
	assert.Equal(t, "0190f3a4-5c6b-7d8e-9f01-23456789abcd", got)

	_, err = Parse("T-00001")
	assert.Error(t, err)
}
