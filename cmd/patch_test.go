package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mutline/mutline/internal/model"
)

func TestPatchCmdDelegatesToWorkflow(t *testing.T) {
	fake := swapWorkflow(t)

	require.NoError(t, patchCmd.RunE(patchCmd, []string{"pkg/mod.py"}))

	require.Len(t, fake.patch, 1)
	assert.Equal(t, m.Path("pkg/mod.py"), fake.patch[0].File)
	assert.Equal(t, 0, fake.patch[0].Index)
}

func TestPatchCmdRequiresExactlyOneArg(t *testing.T) {
	require.Error(t, patchCmd.Args(patchCmd, nil))
	require.Error(t, patchCmd.Args(patchCmd, []string{"a.py", "b.py"}))
	require.NoError(t, patchCmd.Args(patchCmd, []string{"a.py"}))
}
