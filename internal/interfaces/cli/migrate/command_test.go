package migrate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ispdesk/internal/infrastructure/migration"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"short yes", "Y\n", true},
		{"no", "n\n", false},
		{"empty answer", "\n", false},
		{"no input", "", false},
		{"anything else", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(strings.NewReader(tt.input), &out, "Roll back 1 migration(s)?")

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestPrintStatus(t *testing.T) {
	env = "test"
	var out bytes.Buffer

	printStatus(&out, 2, []migration.Status{
		{Version: 1, Applied: true, Source: "00001_create_clients.sql"},
		{Version: 2, Applied: true, Source: "00002_create_plans.sql"},
		{Version: 3, Source: "00003_create_invoices.sql"},
	})

	text := out.String()
	assert.Contains(t, text, "Environment:     test")
	assert.Contains(t, text, "Current Version: 2")
	assert.Contains(t, text, "applied  00001  00001_create_clients.sql")
	assert.Contains(t, text, "pending  00003  00003_create_invoices.sql")
}
