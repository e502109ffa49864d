package tree_test

import (
	"bytes"
	"testing"

	"github.com/nireo/treerb/tree"
	"github.com/nireo/treerb/utils"
	"github.com/stretchr/testify/assert"
)

func TestDebugIsPerTree(t *testing.T) {
	var buf bytes.Buffer
	utils.SetOutput(&buf)
	utils.SetDebuggingMode(false)

	debugConfig := tree.DefaultConfiguration()
	debugConfig.Debug = true
	debugConfig.MaxNodes = 1
	noisy := tree.NewWithConfig(tree.Ordered[int], debugConfig)

	noisy.Insert(1)
	assert.False(t, noisy.Insert(2))
	assert.Contains(t, buf.String(), "insert rejected")

	// a tree without the flag stays quiet even after a debug tree was built
	buf.Reset()
	quietConfig := tree.DefaultConfiguration()
	quietConfig.MaxNodes = 1
	quiet := tree.NewWithConfig(tree.Ordered[int], quietConfig)

	quiet.Insert(1)
	assert.False(t, quiet.Insert(2))
	assert.Empty(t, buf.String())
}
