package exit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDescription(t *testing.T) {
	assert.Equal(t, "Success", GetDescription(Success))
	assert.Equal(t, "Validation error", GetDescription(ValidationError))
	assert.Equal(t, "Incompatible server version", GetDescription(IncompatibleServer))
	assert.Equal(t, "Unknown error", GetDescription(99))
}

func TestCodesAreDistinct(t *testing.T) {
	codes := []int{Success, GeneralError, ValidationError, ConnectionError, NotFound, IncompatibleServer}
	seen := make(map[int]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "exit code %d reused", c)
		seen[c] = true
	}
}
