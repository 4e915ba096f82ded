package port

import (
	"context"
	"encoding/json"
	"math/big"

	"enterl2_explorer/internal/domain/entity"
)

// ExplorerClient is the typed data access used by page orchestration.
//
// Listing and aggregate methods return errors. Get* lookups never fail: nil means
// "not found or unavailable". Find* lookups keep that distinction in entity.Lookup.
type ExplorerClient interface {
	GetNetworkStats(ctx context.Context) (*entity.NetworkStats, error)
	GetLatestTransactions(ctx context.Context, limit int) ([]entity.Transaction, error)
	GetTransactionsByAddress(ctx context.Context, address string, page, limit int) (*entity.AddressTransactions, error)
	GetLatestBlocks(ctx context.Context, limit int) ([]entity.Block, error)
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	GetLatestBatches(ctx context.Context, limit int) ([]entity.Batch, error)
	GetAddressBalance(ctx context.Context, address string) (*big.Int, error)

	GetTransaction(ctx context.Context, hash string) *entity.Transaction
	GetBlock(ctx context.Context, numberOrHash string) *entity.Block
	GetAddress(ctx context.Context, address string) *entity.Address
	GetBatch(ctx context.Context, numberOrHash string) *entity.Batch
	GetNameInfo(ctx context.Context, name string) *entity.NameInfo
	ResolveAddress(ctx context.Context, address string) *string
	Search(ctx context.Context, query string) *entity.SearchResult
	GetStakingInfo(ctx context.Context, address string) json.RawMessage
	GetBridgeStatus(ctx context.Context, txHash string) json.RawMessage
	GetWalletInfo(ctx context.Context, address string) *entity.WalletInfo

	FindTransaction(ctx context.Context, hash string) entity.Lookup[entity.Transaction]
	FindBlock(ctx context.Context, numberOrHash string) entity.Lookup[entity.Block]
	FindAddress(ctx context.Context, address string) entity.Lookup[entity.Address]
	FindBatch(ctx context.Context, numberOrHash string) entity.Lookup[entity.Batch]
	FindNameInfo(ctx context.Context, name string) entity.Lookup[entity.NameInfo]
}

// ExplorerService builds the view model of every explorer page.
type ExplorerService interface {
	HomePage(ctx context.Context) entity.HomePage
	BatchesPage(ctx context.Context) entity.BatchesPage
	TransactionPage(ctx context.Context, hash string) entity.TransactionPage
	BlockPage(ctx context.Context, id string) entity.BlockPage
	AddressPage(ctx context.Context, address string, page int) entity.AddressPage
	BatchPage(ctx context.Context, id string) entity.BatchPage
	NamePage(ctx context.Context, name string) entity.NamePage
	Search(ctx context.Context, query string) *entity.SearchResult
}
