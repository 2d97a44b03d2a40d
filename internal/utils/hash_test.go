package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytes(t *testing.T) {
	a := HashBytes([]byte("movie+a,movie+b"))
	b := HashBytes([]byte("movie+a,movie+b"))
	c := HashBytes([]byte("movie+a,movie+c"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)

	// empty input still hashes to a stable digest
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashBytes(nil),
	)
}
