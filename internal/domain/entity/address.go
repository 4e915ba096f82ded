package entity

// AddressType distinguishes plain accounts, contracts and policy wallets.
type AddressType string

const (
	AddressTypeEOA            AddressType = "eoa"
	AddressTypeContract       AddressType = "contract"
	AddressTypeConsumerWallet AddressType = "consumer_wallet"
	AddressTypeMerchantWallet AddressType = "merchant_wallet"
)

// IsWallet reports whether the address is a consumer or merchant wallet.
func (t AddressType) IsWallet() bool {
	return t == AddressTypeConsumerWallet || t == AddressTypeMerchantWallet
}

// WalletInfo is the policy metadata attached to consumer and merchant wallets.
type WalletInfo struct {
	Type             string   `json:"type"` // "consumer" or "merchant"
	Owner            string   `json:"owner"`
	WhitelistEnabled bool     `json:"whitelistEnabled"`
	DailyLimit       string   `json:"dailyLimit"`
	Operators        []string `json:"operators"`
}

// Address is an account record. WalletInfo is only set for wallet types.
type Address struct {
	Address          string      `json:"address"`
	Balance          string      `json:"balance"`
	TransactionCount uint64      `json:"transactionCount"`
	Type             AddressType `json:"type"`
	IsContract       bool        `json:"isContract"`
	ContractName     string      `json:"contractName,omitempty"`
	WalletInfo       *WalletInfo `json:"walletInfo,omitempty"`
}
