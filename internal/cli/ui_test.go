package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	st := status{w: &buf}
	st.success("Exported %d steps", 7)
	st.file("out.json")
	st.next("Replay it", "dsaviz play --load out.json")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Exported 7 steps")
	assert.Contains(t, lines[1], "out.json")
	assert.Contains(t, lines[2], "dsaviz play --load out.json")
}

func TestPrintSequenceStats(t *testing.T) {
	var buf bytes.Buffer
	r := 3
	printSequenceStats(&buf, 12, &r, true)
	out := buf.String()
	assert.Contains(t, out, "12 steps")
	assert.Contains(t, out, "result 3")
	assert.Contains(t, out, "cached")

	buf.Reset()
	printSequenceStats(&buf, 1, nil, false)
	assert.NotContains(t, buf.String(), "result")
	assert.Contains(t, buf.String(), "fresh")
}
