package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kuku/internal/drill"
)

// clearEnv makes sure no KUKU_* values from the host leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"KUKU_ENV", "KUKU_FROM", "KUKU_TO", "KUKU_CHANT", "KUKU_SEED", "KUKU_LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPrint_Ordered(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "print", "--ordered", "--from", "3", "--to", "4", "--chant=false")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 18)
	assert.Equal(t, "3 × 1", got[0])
	assert.Equal(t, "4 × 9", got[17])
}

func TestPrint_SeedIsReproducible(t *testing.T) {
	clearEnv(t)
	first, stderr, err := execute(t, "print", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, stderr, "seed: 7")

	second, _, err := execute(t, "print", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, lines(first), 81)
}

func TestPrint_AnswersWithReadings(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "print", "--ordered", "--answers", "--from", "8", "--to", "8")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 9)
	assert.Contains(t, got[7], "8 × 8 = 64")
	assert.Contains(t, got[7], "はっぱ ろくじゅうよん")
}

func TestPrint_EnvThenFlagPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("KUKU_FROM", "5")
	t.Setenv("KUKU_TO", "5")
	t.Setenv("KUKU_CHANT", "false")

	out, _, err := execute(t, "print", "--ordered")
	require.NoError(t, err)
	assert.Equal(t, "5 × 1", lines(out)[0])

	out, _, err = execute(t, "print", "--ordered", "--from", "2", "--to", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 × 1", lines(out)[0])
}

func TestPrint_InvalidRange(t *testing.T) {
	clearEnv(t)
	_, _, err := execute(t, "print", "--from", "7", "--to", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, drill.ErrInvalidRange)
}

func TestPrint_BadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("KUKU_SEED", "not-a-number")
	_, _, err := execute(t, "print")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestTable(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "table", "--from", "2", "--to", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2 の段 (orange)")
	assert.Contains(t, out, "3 の段 (yellow)")
	assert.Contains(t, out, "ににんが よん")
	assert.Contains(t, out, "さざんが きゅう")
	assert.Contains(t, out, "さぶろく じゅうはち")
}

func TestVersion(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kuku (devel)\n", out)
}
