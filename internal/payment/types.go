package payment

// Color is the accent used to tint a payment method card.
type Color string

const (
	ColorPrimary Color = "primary"
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorDanger  Color = "danger"
	ColorNeutral Color = "neutral"
)

// Icon is an opaque token the renderer maps to a glyph.
type Icon string

const (
	IconEthereum Icon = "ethereum"
	IconBinance  Icon = "binance"
	IconTron     Icon = "tron"
)

// Method is one displayable payment rail with its receiving address.
type Method struct {
	Name    string `json:"name"`
	Icon    Icon   `json:"icon"`
	Address string `json:"address"`
	Color   Color  `json:"color"`
}

// Addresses holds the configured receiving address per network.
// Empty fields mean the network is not offered.
type Addresses struct {
	ERC20 string `mapstructure:"erc20" json:"erc20,omitempty"`
	BEP20 string `mapstructure:"bep20" json:"bep20,omitempty"`
	TRC20 string `mapstructure:"trc20" json:"trc20,omitempty"`
}
