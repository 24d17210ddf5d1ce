package s2proj

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pflag (not unreasonably) assumes it only ever gets called once, but the
// Main functions get run over and over again here.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

// captureOutput runs command with stdout redirected, optionally feeding it stdin.
func captureOutput(t *testing.T, stdin string, command func()) string {
	t.Helper()

	var oldStdout = os.Stdout
	var oldStdin = os.Stdin

	defer func() {
		os.Stdout = oldStdout
		os.Stdin = oldStdin
	}()

	var inR, inW, inErr = os.Pipe()
	require.NoError(t, inErr)

	var _, writeErr = inW.WriteString(stdin)
	require.NoError(t, writeErr)
	inW.Close() //nolint:gosec

	os.Stdin = inR

	var r, w, outErr = os.Pipe()
	require.NoError(t, outErr)

	os.Stdout = w

	command()

	w.Close() //nolint:gosec

	os.Stdout = oldStdout

	var outputBytes, readErr = io.ReadAll(r)

	require.NoError(t, readErr)

	return string(outputBytes)
}

func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, captureOutput(t, "", command), expectedOutputContains)
}
