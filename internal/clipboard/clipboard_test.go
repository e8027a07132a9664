package clipboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSystem().WriteText(ctx, "0xABC")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var got string
	w := Func(func(_ context.Context, text string) error {
		got = text
		return nil
	})

	require.NoError(t, w.WriteText(context.Background(), " TR123 "))
	assert.Equal(t, " TR123 ", got)
}
