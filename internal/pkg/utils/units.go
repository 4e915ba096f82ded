package utils

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals of the native coin.
const EtherDecimals = 18

// FormatUnits converts a big.Int value to a human-readable string,
// considering the given number of decimals. Trailing zeros are dropped.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// FormatEther formats a decimal wei string as ETH. Invalid input renders as "0".
func FormatEther(wei string) string {
	d, err := decimal.NewFromString(wei)
	if err != nil {
		return "0"
	}
	return d.Shift(-EtherDecimals).String()
}

// FormatEtherBig is FormatEther for an already parsed amount.
func FormatEtherBig(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}
