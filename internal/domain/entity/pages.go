package entity

import (
	"encoding/json"
	"math/big"
)

// Section is one independently loaded part of a page. Err is set when loading failed.
type Section[T any] struct {
	Data T
	Err  error
}

// Failed reports whether the section could not be loaded.
func (s Section[T]) Failed() bool {
	return s.Err != nil
}

// HomePage is the landing page: network stats plus the newest blocks and transactions.
type HomePage struct {
	Stats        Section[*NetworkStats]
	Blocks       Section[[]Block]
	Transactions Section[[]Transaction]
}

// BatchesPage lists the newest batches.
type BatchesPage struct {
	Batches Section[[]Batch]
}

// TransactionPage is the transaction detail page.
type TransactionPage struct {
	Hash        string
	Transaction Lookup[Transaction]
	// BridgeStatus is only looked up for deposits and withdrawals.
	BridgeStatus json.RawMessage
}

// BlockPage is the block detail page. Confirmations is 0 when the head is unknown.
type BlockPage struct {
	ID            string
	Block         Lookup[Block]
	Confirmations uint64
}

// AddressPage is the address detail page with one page of its history.
type AddressPage struct {
	AddressHash  string
	Address      Lookup[Address]
	Balance      Section[*big.Int]
	Transactions Section[*AddressTransactions]
	PrimaryName  *string
	Wallet       *WalletInfo
	Staking      json.RawMessage
}

// BatchPage is the batch detail page.
type BatchPage struct {
	ID    string
	Batch Lookup[Batch]
}

// NamePage is the name-service record page.
type NamePage struct {
	Name string
	Info Lookup[NameInfo]
}
