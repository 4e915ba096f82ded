package entity

import "strings"

// ZeroAddress represents the Ethereum zero address. As a fee token it means the native coin.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// TransactionType enumerates the L2 transaction kinds.
type TransactionType int

const (
	TransactionTypeTransfer TransactionType = iota
	TransactionTypeDeposit
	TransactionTypeWithdrawal
	TransactionTypeNameRegistration
	TransactionTypeStaking
)

// Label returns the display name of the type, "Unknown" for values outside 0-4.
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeTransfer:
		return "Transfer"
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeNameRegistration:
		return "Name Registration"
	case TransactionTypeStaking:
		return "Staking"
	default:
		return "Unknown"
	}
}

// TransactionStatus is the inclusion state reported upstream.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an L2 transaction. FeePayer differs from From when the fee is sponsored.
type Transaction struct {
	Hash             string            `json:"hash"`
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	From             string            `json:"from"`
	To               string            `json:"to"`
	Amount           string            `json:"amount"` // wei, decimal string
	Token            string            `json:"token,omitempty"`
	Fee              string            `json:"fee"` // wei, decimal string
	FeePayer         string            `json:"feePayer"`
	FeeToken         string            `json:"feeToken"`
	BlockNumber      *uint64           `json:"blockNumber,omitempty"`
	BlockHash        string            `json:"blockHash,omitempty"`
	TransactionIndex *uint64           `json:"transactionIndex,omitempty"`
	GasUsed          string            `json:"gasUsed,omitempty"`
	Timestamp        *int64            `json:"timestamp,omitempty"` // unix seconds
	Nonce            uint64            `json:"nonce"`
	Description      string            `json:"description,omitempty"`
}

// IsFeeSponsored reports whether someone other than the sender paid the fee.
func (t Transaction) IsFeeSponsored() bool {
	return t.FeePayer != "" && !strings.EqualFold(t.FeePayer, t.From)
}

// FeeTokenSymbol returns the symbol the fee was paid in.
func (t Transaction) FeeTokenSymbol() string {
	if t.FeeToken == "" || strings.EqualFold(t.FeeToken, ZeroAddress) {
		return "ETH"
	}
	return "USDC"
}

// IsPending reports whether the transaction is not yet part of a block.
func (t Transaction) IsPending() bool {
	return t.BlockNumber == nil
}

// AddressTransactions is one page of an address' transaction history.
type AddressTransactions struct {
	Transactions []Transaction `json:"transactions"`
	Total        uint64        `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}

// HasNextPage reports whether more transactions exist after this page.
func (p AddressTransactions) HasNextPage() bool {
	return p.Limit > 0 && uint64(p.Page*p.Limit) < p.Total
}
