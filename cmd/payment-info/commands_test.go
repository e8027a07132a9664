package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/payment-info/internal/clipboard"
	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/payment"
)

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRunCopyBySelector(t *testing.T) {
	t.Parallel()

	var got []string
	clip := clipboard.Func(func(_ context.Context, text string) error {
		got = append(got, text)
		return nil
	})
	addrs := payment.Addresses{ERC20: "0xABC", TRC20: "TR123"}

	cmd, buf := testCmd()
	require.NoError(t, runCopy(cmd, addrs, "t", "trc20", clip, time.Millisecond, true))
	assert.Equal(t, []string{"TR123"}, got)
	assert.Contains(t, buf.String(), "TR123 [copied ✓]")
	assert.NotContains(t, buf.String(), "TR123 [copy]")

	cmd, _ = testCmd()
	require.NoError(t, runCopy(cmd, addrs, "t", "0", clip, time.Minute, true))
	assert.Equal(t, []string{"TR123", "0xABC"}, got)
}

func TestRunCopyRedrawsAfterRevert(t *testing.T) {
	t.Parallel()

	clip := clipboard.Func(func(context.Context, string) error { return nil })
	cmd, buf := testCmd()

	require.NoError(t, runCopy(cmd, payment.Addresses{ERC20: "0xABC", TRC20: "TR123"}, "t", "TRC20", clip, 10*time.Millisecond, false))

	out := buf.String()
	copied := strings.Index(out, "TR123 [copied ✓]")
	reverted := strings.LastIndex(out, "TR123 [copy]")
	require.GreaterOrEqual(t, copied, 0)
	require.Greater(t, reverted, copied)
	assert.Equal(t, 1, strings.Count(out, "[copied ✓]"))
	assert.Equal(t, 2, strings.Count(out, "0xABC [copy]"))
}

func TestRunCopyUnknownSelector(t *testing.T) {
	t.Parallel()

	cmd, _ := testCmd()
	err := runCopy(cmd, payment.Addresses{ERC20: "0xABC"}, "t", "BEP20", clipboard.Func(func(context.Context, string) error { return nil }), time.Minute, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: ERC20")
}

func TestRunCopyClipboardFailureIsNotAnError(t *testing.T) {
	t.Parallel()

	cmd, buf := testCmd()
	clip := clipboard.Func(func(context.Context, string) error { return errors.New("no display") })

	require.NoError(t, runCopy(cmd, payment.Addresses{ERC20: "0xABC"}, "t", "ERC20", clip, time.Minute, false))
	assert.Contains(t, buf.String(), "0xABC [copy]")
}

// isolateEnv keeps the developer's home config and PAYMENT_INFO_* overrides
// out of command tests.
func isolateEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, constants.EnvPrefix+"_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func TestListCommand(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Payment:\n  bep20: \"0xBNB\"\n"), 0o600))

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--config", path, "list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "BEP20")
	assert.Contains(t, buf.String(), "0xBNB")
	assert.NotContains(t, buf.String(), "ERC20")
}

func TestListCommandEmpty(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name:\n  First: Ada\n"), 0o600))

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--config", path, "list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "No payment methods configured yet.")
}
