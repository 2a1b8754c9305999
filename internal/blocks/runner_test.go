package blocks

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var stdout, stderr bytes.Buffer
	r := &OSRunner{Stdout: &stdout, Stderr: &stderr}

	require.NoError(t, r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo created"))
	require.Equal(t, "created\n", stdout.String())

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo 'no such template' >&2; exit 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such template")
	require.Equal(t, "no such template\n", stderr.String())
}
