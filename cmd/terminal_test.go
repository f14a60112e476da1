package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRLFWriter(t *testing.T) {
	var out bytes.Buffer
	w := crlfWriter{out: &out}

	n, err := w.Write([]byte("Pressed → Current position (1, 0)\nGAME OVER!\n"))
	require.NoError(t, err)

	assert.Equal(t, len("Pressed → Current position (1, 0)\nGAME OVER!\n"), n)
	assert.Equal(t, "Pressed → Current position (1, 0)\r\nGAME OVER!\r\n", out.String())
}

func TestRawModeSkipsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	restore, raw, err := rawMode(r)
	require.NoError(t, err)
	assert.False(t, raw)
	restore()
}
