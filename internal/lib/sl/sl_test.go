package sl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.Equal(t, "", Err(nil).Value.String())
}

func TestSecret(t *testing.T) {
	assert.Equal(t, "***", Secret("token", "short").Value.String())
	assert.Equal(t, "1234***cdef", Secret("token", "1234567890abcdef").Value.String())
}
