package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.org", true},
		{"user@domain", false},
		{"@example.com", false},
		{"user @example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsPassword(t *testing.T) {
	assert.False(t, IsPassword(""))
	assert.False(t, IsPassword("12345"))
	assert.True(t, IsPassword("123456"))
	assert.True(t, IsPassword("a much longer password"))
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+1234567890", true},
		{"123-456-7890", true},
		{"(123)456-7890", true},
		{"123.456.78901", true},
		{"12345", false},
		{"phone", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestIsTime(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"00:00", true},
		{"9:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsTime(tt.in), "time %q", tt.in)
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2030-06-15"))
	assert.True(t, IsDate("2030-06-15T10:00:00Z"))
	assert.False(t, IsDate("15/06/2030"))
	assert.False(t, IsDate("not a date"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  hello  "))
	assert.Equal(t, "scriptalert(1)/script", Sanitize("<script>alert(1)</script>"))
	assert.Equal(t, "plain text", Sanitize("plain text"))
}
