package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"asha@example.com", "a.b+tag@sub.domain.in", "x@y.z"}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}

	invalid := []string{"", "plain", "no@tld", "two@@example.com", "spaces in@example.com", "@example.com"}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876543210", NormalizePhone("+91 98765-43210"))
	assert.Equal(t, "9876543210", NormalizePhone("98765 43210"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("98765-43210"))
	assert.False(t, ValidPhone("+91 9876543210"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone(""))
}

func TestValidPincode(t *testing.T) {
	assert.True(t, ValidPincode("190001"))
	assert.False(t, ValidPincode("19001"))
	assert.False(t, ValidPincode("1900011"))
	assert.False(t, ValidPincode("19000a"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@example.com", NormalizeEmail("  Asha@Example.COM "))
}
