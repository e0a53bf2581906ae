package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "T-00001", Format("T", 1))
	assert.Equal(t, "INV-00042", Format("INV", 42))
	assert.Equal(t, "T-123456", Format("T", 123456))
}

// The counter seeds from the highest stored number, so Parse then Format of
// n+1 must yield the label that follows it.
func TestParseFormat_NextLabel(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		last    string
		want    string
		wantErr bool
	}{
		{name: "next after T-00042", prefix: "T", last: "T-00042", want: "T-00043"},
		{name: "carries past padding", prefix: "T", last: "T-99999", want: "T-100000"},
		{name: "invoice", prefix: "INV", last: "INV-00009", want: "INV-00010"},
		{name: "no suffix", prefix: "T", last: "T-", wantErr: true},
		{name: "garbage", prefix: "T", last: "ticket", wantErr: true},
		{name: "non numeric", prefix: "T", last: "T-00A1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.last)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(tt.prefix, n+1))
		})
	}
}

func TestParse(t *testing.T) {
	n, err := Parse("TKT-2024-0007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = Parse("T-00-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = Parse("T-1.5")
	assert.Error(t, err)
}
