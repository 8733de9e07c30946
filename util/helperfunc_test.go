package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trim leading whitespace", "  John Doe", "John Doe"},
		{"trim trailing whitespace", "John Doe  ", "John Doe"},
		{"collapse multiple internal spaces", "John  Doe", "John Doe"},
		{"trim and collapse combined", "  John    Doe  ", "John Doe"},
		{"already normalized", "John Doe", "John Doe"},
		{"empty string", "", ""},
		{"only whitespace", "   ", ""},
		{"tabs and newlines", "John\t\nDoe", "John Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeUpper(t *testing.T) {
	assert.Equal(t, "JOHN DOE", NormalizeUpper(" john   doe "))
	assert.Equal(t, "12 MAIN ST", NormalizeUpper("12 main st"))
	assert.Equal(t, "", NormalizeUpper("\t"))
}

func TestIsContactNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"987654321", false},
		{"98765432100", false},
		{"98765a3210", false},
		{"98765 3210", false},
		{" 987654321", false},
		{"987654321\r", false},
		{"", false},
		{"９８７６５４３２１０", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsContactNumber(tt.input), "IsContactNumber(%q)", tt.input)
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2025-01-15"))
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2025-02-29"))
	assert.False(t, IsDate("2025-13-01"))
	assert.False(t, IsDate("2025-1-15"))
	assert.False(t, IsDate("15-01-2025"))
	assert.False(t, IsDate(""))
}

func TestIsTime(t *testing.T) {
	assert.True(t, IsTime("09:30"))
	assert.True(t, IsTime("00:00"))
	assert.True(t, IsTime("23:59"))
	assert.False(t, IsTime("24:00"))
	assert.False(t, IsTime("9:30"))
	assert.False(t, IsTime("09:60"))
	assert.False(t, IsTime("0930"))
}

func TestParseGender(t *testing.T) {
	allowed := []string{"M", "F", "O"}
	for _, in := range []string{"m", "M", "f", "O"} {
		g, ok := ParseGender(in, allowed)
		assert.True(t, ok, in)
		assert.Equal(t, strings.ToUpper(in), g)
	}
	for _, in := range []string{"", "x", "MF", "male", " m"} {
		_, ok := ParseGender(in, allowed)
		assert.False(t, ok, in)
	}
}

func TestCallServerError(t *testing.T) {
	logBuf := &bytes.Buffer{}
	restore := SetLoggerOutputForTest(logBuf)
	defer restore()

	out := &bytes.Buffer{}
	CallServerError(out, ErrorParams{Msg: "Failed to add patient", Err: errors.New("constraint failed")})

	assert.Equal(t, "Failed to add patient: constraint failed\n", out.String())
	assert.Contains(t, logBuf.String(), "Failed to add patient")
	assert.Contains(t, logBuf.String(), "constraint failed")
}

func TestCallUserErrorAndSuccess(t *testing.T) {
	restore := SetLoggerOutputForTest(&bytes.Buffer{})
	defer restore()

	out := &bytes.Buffer{}
	CallUserError(out, ErrorParams{Msg: "Name cannot be empty."})
	CallNotFound(out, ErrorParams{Msg: "Patient with ID 7 does not exist."})
	CallSuccess(out, "Patient added successfully.")

	assert.Equal(t, "Name cannot be empty.\nPatient with ID 7 does not exist.\n\nPatient added successfully.\n", out.String())
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositiveInt(1))
	assert.False(t, IsPositiveInt(0))
	assert.False(t, IsPositiveInt(-4))
	assert.True(t, IsPositiveFloat(0.01))
	assert.False(t, IsPositiveFloat(0))
	assert.False(t, IsPositiveFloat(-70.5))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a"))
	assert.False(t, IsDigits("-12"))
}
