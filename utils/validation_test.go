package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmailDots(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"collapses duplicate dots in local part", "j..o...hn@x.com", "j.o.hn@x.com"},
		{"plain address unchanged", "plain@x.com", "plain@x.com"},
		{"empty input unchanged", "", ""},
		{"no at sign unchanged", "no-at-sign", "no-at-sign"},
		{"domain dots untouched", "a..b@sub..domain.com", "a.b@sub..domain.com"},
		{"single dots untouched", "j.o.hn@x.com", "j.o.hn@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmailDots(tt.email))
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	t.Run("trims and lowercases", func(t *testing.T) {
		got, err := SanitizeEmail("  John.Doe@Example.COM ")
		assert.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", got)
	})

	t.Run("rejects malformed address", func(t *testing.T) {
		_, err := SanitizeEmail("not-an-email")
		assert.Error(t, err)
	})
}

func TestSanitizePhone(t *testing.T) {
	t.Run("strips formatting and adds plus", func(t *testing.T) {
		got, err := SanitizePhone("20 112 244-5555")
		assert.NoError(t, err)
		assert.Equal(t, "+201122445555", got)
	})

	t.Run("empty phone is allowed", func(t *testing.T) {
		got, err := SanitizePhone("  ")
		assert.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("rejects too short numbers", func(t *testing.T) {
		_, err := SanitizePhone("123")
		assert.Error(t, err)
	})
}
