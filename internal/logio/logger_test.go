package logio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out strings.Builder
	log := New(&out)

	log.Printf("TRACE", "expand %v", 42)
	assert.Equal(t, "TRACE: expand 42\n", out.String())
	assert.Equal(t, 0, log.ExitCode())

	out.Reset()
	tracef := log.Leveledf("TRACE")
	tracef("plain message")
	assert.Equal(t, "TRACE: plain message\n", out.String())

	out.Reset()
	log.Errorf("boom: %v", "reason")
	assert.Equal(t, "ERROR: boom: reason\n", out.String())
	assert.Equal(t, 1, log.ExitCode())

	log.ErrorIf(nil)
	assert.Equal(t, 1, log.ExitCode())
}
