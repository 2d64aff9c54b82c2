package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientDisabledWithoutKey(t *testing.T) {
	c := NewClient("  ")
	assert.Nil(t, c)
	assert.False(t, c.Enabled())
	assert.Equal(t, "oracle(disabled)", c.String())
}

func TestStringMasksKey(t *testing.T) {
	c := NewClient("secret-abcd")
	assert.True(t, c.Enabled())
	s := c.String()
	assert.Contains(t, s, "abcd")
	assert.NotContains(t, s, "secret")

	short := NewClient("ab")
	assert.Contains(t, short.String(), "ab")
}
