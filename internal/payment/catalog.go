package payment

import (
	"strconv"
	"strings"
)

type descriptor struct {
	name    string
	icon    Icon
	color   Color
	address func(Addresses) string
}

// catalog order is display order.
var catalog = [...]descriptor{
	{name: "ERC20", icon: IconEthereum, color: ColorPrimary, address: func(a Addresses) string { return a.ERC20 }},
	{name: "BEP20", icon: IconBinance, color: ColorWarning, address: func(a Addresses) string { return a.BEP20 }},
	{name: "TRC20", icon: IconTron, color: ColorSuccess, address: func(a Addresses) string { return a.TRC20 }},
}

// Networks returns the catalog network names in display order.
func Networks() []string {
	out := make([]string, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d.name)
	}
	return out
}

// Methods joins the static catalog with the configured addresses and keeps
// only the networks that have an address. Addresses are carried verbatim.
func Methods(addrs Addresses) []Method {
	out := make([]Method, 0, len(catalog))
	for _, d := range catalog {
		addr := d.address(addrs)
		if addr == "" {
			continue
		}
		out = append(out, Method{
			Name:    d.name,
			Icon:    d.icon,
			Address: addr,
			Color:   d.color,
		})
	}
	return out
}

// Lookup resolves a selector against a display list. The selector is either
// a network name (case-insensitive) or a zero-based index.
func Lookup(methods []Method, selector string) (int, Method, bool) {
	sel := strings.TrimSpace(selector)
	for i, m := range methods {
		if strings.EqualFold(m.Name, sel) {
			return i, m, true
		}
	}
	idx, err := strconv.Atoi(sel)
	if err != nil || idx < 0 || idx >= len(methods) {
		return 0, Method{}, false
	}
	return idx, methods[idx], true
}
