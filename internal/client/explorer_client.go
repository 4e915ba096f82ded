package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/app/search"
	"enterl2_explorer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

const (
	DefaultListLimit    = 10
	DefaultAddressPage  = 1
	DefaultAddressLimit = 20
)

// ExplorerClient is the typed data client of the explorer. Listings come from
// the REST API, detail lookups mostly from the node. Each accessor makes exactly
// one outbound call; there is no retry and no cache at this level.
type ExplorerClient struct {
	rest   port.RESTTransport
	rpc    port.RPCTransport
	logger *zap.Logger
}

var _ port.ExplorerClient = (*ExplorerClient)(nil)

// NewExplorerClient creates a new instance of ExplorerClient.
func NewExplorerClient(rest port.RESTTransport, rpc port.RPCTransport, logger *zap.Logger) *ExplorerClient {
	return &ExplorerClient{
		rest:   rest,
		rpc:    rpc,
		logger: logger.Named("ExplorerClient"),
	}
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// GetNetworkStats returns the aggregate network snapshot.
func (c *ExplorerClient) GetNetworkStats(ctx context.Context) (*entity.NetworkStats, error) {
	var stats entity.NetworkStats
	if err := c.rest.Get(ctx, "/api/v1/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to get network stats: %w", err)
	}
	return &stats, nil
}

// GetLatestTransactions returns the newest transactions. limit <= 0 means DefaultListLimit.
func (c *ExplorerClient) GetLatestTransactions(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	path := fmt.Sprintf("/api/v1/transactions?limit=%d", listLimit(limit))
	if err := c.rest.Get(ctx, path, &txs); err != nil {
		return nil, fmt.Errorf("failed to get latest transactions: %w", err)
	}
	return txs, nil
}

// GetTransactionsByAddress returns one page of the address history.
func (c *ExplorerClient) GetTransactionsByAddress(ctx context.Context, address string, page, limit int) (*entity.AddressTransactions, error) {
	if page <= 0 {
		page = DefaultAddressPage
	}
	if limit <= 0 {
		limit = DefaultAddressLimit
	}

	var result entity.AddressTransactions
	path := fmt.Sprintf("/api/v1/addresses/%s/transactions?page=%d&limit=%d", url.PathEscape(address), page, limit)
	if err := c.rest.Get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to get transactions of %s: %w", address, err)
	}
	return &result, nil
}

// GetLatestBlocks returns the newest blocks. limit <= 0 means DefaultListLimit.
func (c *ExplorerClient) GetLatestBlocks(ctx context.Context, limit int) ([]entity.Block, error) {
	var blocks []entity.Block
	path := fmt.Sprintf("/api/v1/blocks?limit=%d", listLimit(limit))
	if err := c.rest.Get(ctx, path, &blocks); err != nil {
		return nil, fmt.Errorf("failed to get latest blocks: %w", err)
	}
	return blocks, nil
}

// GetLatestBlockNumber returns the node head.
func (c *ExplorerClient) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	var raw string
	if err := c.rpc.Call(ctx, &raw, "eth_blockNumber", nil); err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	number, err := parseQuantity(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse latest block number %q: %w", raw, err)
	}
	return number, nil
}

// parseQuantity reads a hex quantity with or without 0x. Unlike hexutil it accepts leading zeros.
func parseQuantity(s string) (uint64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return 0, fmt.Errorf("empty hex quantity")
	}
	return strconv.ParseUint(digits, 16, 64)
}

// GetLatestBatches returns the newest batches. limit <= 0 means DefaultListLimit.
func (c *ExplorerClient) GetLatestBatches(ctx context.Context, limit int) ([]entity.Batch, error) {
	var batches []entity.Batch
	path := fmt.Sprintf("/api/v1/batches?limit=%d", listLimit(limit))
	if err := c.rest.Get(ctx, path, &batches); err != nil {
		return nil, fmt.Errorf("failed to get latest batches: %w", err)
	}
	return batches, nil
}

// GetAddressBalance returns the latest balance in wei.
func (c *ExplorerClient) GetAddressBalance(ctx context.Context, address string) (*big.Int, error) {
	var balance hexutil.Big
	if err := c.rpc.Call(ctx, &balance, "eth_getBalance", []any{address, "latest"}); err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", address, err)
	}
	return balance.ToInt(), nil
}

// FindTransaction looks up a transaction by hash on the node.
func (c *ExplorerClient) FindTransaction(ctx context.Context, hash string) entity.Lookup[entity.Transaction] {
	return callLookup[entity.Transaction](ctx, c, "eth_getTransactionByHash", hash)
}

// FindBlock looks up a block by decimal number or by hash, including its transactions.
func (c *ExplorerClient) FindBlock(ctx context.Context, numberOrHash string) entity.Lookup[entity.Block] {
	if search.IsBlockNumber(numberOrHash) {
		number, err := strconv.ParseUint(numberOrHash, 10, 64)
		if err != nil {
			// larger than any block the node can hold
			return entity.NotFound[entity.Block]()
		}
		return callLookup[entity.Block](ctx, c, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	}
	return callLookup[entity.Block](ctx, c, "eth_getBlockByHash", numberOrHash, true)
}

// FindAddress looks up the account record on the REST API.
func (c *ExplorerClient) FindAddress(ctx context.Context, address string) entity.Lookup[entity.Address] {
	return getLookup[entity.Address](ctx, c, "/api/v1/addresses/"+url.PathEscape(address))
}

// FindBatch looks up a batch by decimal number or by hash.
func (c *ExplorerClient) FindBatch(ctx context.Context, numberOrHash string) entity.Lookup[entity.Batch] {
	if search.IsBlockNumber(numberOrHash) {
		number, err := strconv.ParseUint(numberOrHash, 10, 64)
		if err != nil {
			return entity.NotFound[entity.Batch]()
		}
		return callLookup[entity.Batch](ctx, c, "enterl2_getBatchByNumber", hexutil.EncodeUint64(number))
	}
	return callLookup[entity.Batch](ctx, c, "enterl2_getBatchByHash", numberOrHash)
}

// FindNameInfo looks up a name-service record.
func (c *ExplorerClient) FindNameInfo(ctx context.Context, name string) entity.Lookup[entity.NameInfo] {
	return callLookup[entity.NameInfo](ctx, c, "enterl2_getNameInfo", name)
}

// GetTransaction returns nil when the transaction is absent or could not be fetched.
func (c *ExplorerClient) GetTransaction(ctx context.Context, hash string) *entity.Transaction {
	return c.FindTransaction(ctx, hash).Value()
}

// GetBlock returns nil when the block is absent or could not be fetched.
func (c *ExplorerClient) GetBlock(ctx context.Context, numberOrHash string) *entity.Block {
	return c.FindBlock(ctx, numberOrHash).Value()
}

// GetAddress returns nil when the address is unknown or could not be fetched.
func (c *ExplorerClient) GetAddress(ctx context.Context, address string) *entity.Address {
	return c.FindAddress(ctx, address).Value()
}

// GetBatch returns nil when the batch is absent or could not be fetched.
func (c *ExplorerClient) GetBatch(ctx context.Context, numberOrHash string) *entity.Batch {
	return c.FindBatch(ctx, numberOrHash).Value()
}

// GetNameInfo returns nil when the name is not registered or could not be fetched.
func (c *ExplorerClient) GetNameInfo(ctx context.Context, name string) *entity.NameInfo {
	return c.FindNameInfo(ctx, name).Value()
}

// ResolveAddress returns the primary name of address, nil if none.
func (c *ExplorerClient) ResolveAddress(ctx context.Context, address string) *string {
	return getLookup[string](ctx, c, "/api/v1/names/reverse/"+url.PathEscape(address)).Value()
}

// Search asks the backing search service about query.
func (c *ExplorerClient) Search(ctx context.Context, query string) *entity.SearchResult {
	return getLookup[entity.SearchResult](ctx, c, "/api/v1/search?q="+url.QueryEscape(query)).Value()
}

// GetWalletInfo returns the wallet policy of address, nil for non-wallets.
func (c *ExplorerClient) GetWalletInfo(ctx context.Context, address string) *entity.WalletInfo {
	return callLookup[entity.WalletInfo](ctx, c, "enterl2_getWalletInfo", address).Value()
}

// GetStakingInfo returns the raw staking record, nil when absent.
func (c *ExplorerClient) GetStakingInfo(ctx context.Context, address string) json.RawMessage {
	return c.rawCall(ctx, "enterl2_getStakingInfo", address)
}

// GetBridgeStatus returns the raw bridge status of txHash, nil when absent.
func (c *ExplorerClient) GetBridgeStatus(ctx context.Context, txHash string) json.RawMessage {
	return c.rawCall(ctx, "enterl2_getBridgeStatus", txHash)
}

func (c *ExplorerClient) rawCall(ctx context.Context, method string, params ...any) json.RawMessage {
	var raw json.RawMessage
	if err := c.rpc.Call(ctx, &raw, method, params); err != nil {
		c.logDropped(method, err)
		return nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

func (c *ExplorerClient) logDropped(operation string, err error) {
	if entity.IsNotFound(err) {
		c.logger.Debug("Lookup found nothing", zap.String("operation", operation))
		return
	}
	c.logger.Warn("Lookup failed, reporting absence", zap.String("operation", operation), zap.Error(err))
}

// callLookup decodes an RPC result into *T. A null result is NotFound.
func callLookup[T any](ctx context.Context, c *ExplorerClient, method string, params ...any) entity.Lookup[T] {
	var out *T
	if err := c.rpc.Call(ctx, &out, method, params); err != nil {
		lookup := entity.Failed[T](err)
		c.logDropped(method, err)
		return lookup
	}
	return entity.Found(out)
}

// getLookup decodes a REST body into *T. A 404 is NotFound.
func getLookup[T any](ctx context.Context, c *ExplorerClient, path string) entity.Lookup[T] {
	var out *T
	if err := c.rest.Get(ctx, path, &out); err != nil {
		lookup := entity.Failed[T](err)
		c.logDropped(path, err)
		return lookup
	}
	return entity.Found(out)
}
