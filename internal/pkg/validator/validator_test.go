package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("j+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-06-15")
	assert.True(t, ok)
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-06-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("6")
	assert.True(t, ok)
	assert.Equal(t, time.June, m)

	m, ok = ParseMonth("12")
	assert.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = ParseMonth("0")
	assert.False(t, ok)

	_, ok = ParseMonth("13")
	assert.False(t, ok)

	_, ok = ParseMonth("June")
	assert.False(t, ok)

	_, ok = ParseMonth("")
	assert.False(t, ok)

	_, ok = ParseMonth("-3")
	assert.False(t, ok)
}

func TestIsValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}
