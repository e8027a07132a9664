package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		addrs Addresses
		want  []string
	}{
		{name: "all configured", addrs: Addresses{ERC20: "0xA", BEP20: "0xB", TRC20: "TC"}, want: []string{"ERC20", "BEP20", "TRC20"}},
		{name: "bep20 empty", addrs: Addresses{ERC20: "0xABC", TRC20: "TR123"}, want: []string{"ERC20", "TRC20"}},
		{name: "only trc20", addrs: Addresses{TRC20: "T1"}, want: []string{"TRC20"}},
		{name: "none", addrs: Addresses{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Methods(tt.addrs)
			names := make([]string, 0, len(got))
			for _, m := range got {
				assert.NotEmpty(t, m.Address)
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMethodsScenario(t *testing.T) {
	t.Parallel()

	got := Methods(Addresses{ERC20: "0xABC", BEP20: "", TRC20: "TR123"})

	require.Len(t, got, 2)
	assert.Equal(t, Method{Name: "ERC20", Icon: IconEthereum, Address: "0xABC", Color: ColorPrimary}, got[0])
	assert.Equal(t, Method{Name: "TRC20", Icon: IconTron, Address: "TR123", Color: ColorSuccess}, got[1])
}

func TestMethodsKeepsAddressVerbatim(t *testing.T) {
	t.Parallel()

	got := Methods(Addresses{BEP20: "  0xAbCdEf "})

	require.Len(t, got, 1)
	assert.Equal(t, "  0xAbCdEf ", got[0].Address)
	assert.Equal(t, ColorWarning, got[0].Color)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	methods := Methods(Addresses{ERC20: "0xABC", TRC20: "TR123"})

	idx, m, ok := Lookup(methods, "trc20")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "TR123", m.Address)

	idx, m, ok = Lookup(methods, "0")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "ERC20", m.Name)

	_, _, ok = Lookup(methods, "BEP20")
	assert.False(t, ok)

	_, _, ok = Lookup(methods, "2")
	assert.False(t, ok)

	_, _, ok = Lookup(methods, "-1")
	assert.False(t, ok)
}

func TestNetworks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ERC20", "BEP20", "TRC20"}, Networks())
}
