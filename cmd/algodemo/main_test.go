package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search_algo_code/bst"
)

func runApp(t *testing.T, args ...string) string {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"algodemo", "--no-color", "--log-level", "error"}, args...))
	require.NoError(t, err)
	return out.String()
}

func TestSortsCommand(t *testing.T) {
	assert := assert.New(t)
	out := runApp(t, "sorts", "--seed", "7")

	for _, s := range allSorts(0) {
		assert.Contains(out, "=== "+s.name+" ===")
	}
	assert.NotContains(out, "FAILED")
	assert.Contains(out, "Array: 1152 6970 18498 ")
}

func TestBSTCommand(t *testing.T) {
	assert := assert.New(t)
	out := runApp(t, "bst")

	assert.Contains(out, "valid: true")
	assert.Contains(out, "in order: [20 30 40 50 60 70 80]")
	assert.Contains(out, "level: 20 at level 3")
	assert.Contains(out, "min/max: 20 / 80")
	assert.Contains(out, ">= 60: [80 70 60]")
	assert.Contains(out, "4-th smallest: 50")
}

func TestBSTCommandOutOfRange(t *testing.T) {
	out := runApp(t, "bst", "--keys", "3,1,2", "--k", "9")
	assert.Contains(t, out, "9-th smallest: ")
	assert.Contains(t, out, "out of range")
}

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)

	out := renderTree(bst.Build([]int{2, 1, 3}))
	assert.Contains(out, "2\n")
	assert.Contains(out, "L: 1")
	assert.Contains(out, "R: 3")

	assert.Contains(renderTree(bst.New[int]()), "(empty)")
}
