package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labeled = `class,cap,odor
e,x,n
p,b,f
e,x,n
p,x,f
`

// executeCommand runs the root command with args after restoring every flag
// to its default, so state does not leak between tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	output, err := executeCommand(t, "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "infogain reads a comma-delimited dataset")
	assert.Contains(t, output, "Available Commands:")
}

func TestGlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	flag := flags.Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "string", flag.Value.Type())

	flag = flags.Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)

	flag = flags.Lookup("target")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)

	flag = flags.Lookup("rows")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)

	flag = flags.Lookup("comma")
	require.NotNil(t, flag)
	assert.Equal(t, ",", flag.DefValue)
}

func TestCommandAvailability(t *testing.T) {
	for _, name := range []string{"gain", "entropy", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err, "command %s should be available", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestInitLogging(t *testing.T) {
	require.NotPanics(t, func() {
		initLogging()
	})
}

func TestInitConfig(t *testing.T) {
	require.NotPanics(t, func() {
		initConfig()
	})
}
