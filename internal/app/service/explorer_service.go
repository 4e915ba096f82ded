package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/app/search"
	"enterl2_explorer/internal/domain/entity"
	"enterl2_explorer/internal/infrastructure/configloader"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKeyStats        = "stats"
	cacheKeyBlocks       = "blocks:%d"
	cacheKeyTransactions = "transactions:%d"
	cacheKeyBatches      = "batches:%d"
)

// explorerServiceImpl implements port.ExplorerService
type explorerServiceImpl struct {
	client port.ExplorerClient
	logger port.Logger
	cfg    *configloader.Config
	cache  *cache.Cache
}

// NewExplorerService creates a new instance of explorerServiceImpl.
// The stats snapshot and the latest lists are cached; detail lookups never are.
func NewExplorerService(client port.ExplorerClient, l port.Logger, config *configloader.Config) port.ExplorerService {
	if config == nil {
		config = configloader.Default()
	}
	if l == nil {
		l = port.NopLogger{}
	}
	s := &explorerServiceImpl{
		client: client,
		logger: l,
		cfg:    config,
		cache:  cache.New(config.Cache.ListTTL(), config.Cache.CleanupInterval()),
	}
	l.Info("ExplorerService успешно инициализирован.", "surfaceLookupErrors", config.Pages.SurfaceLookupErrors)
	return s
}

// cached returns the value under key, loading and storing it on a miss. Errors are never cached.
func cached[T any](c *cache.Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

// HomePage loads the three home sections concurrently. A failed section does not hide the others.
func (s *explorerServiceImpl) HomePage(ctx context.Context) entity.HomePage {
	var page entity.HomePage
	limit := s.cfg.Pages.LatestLimit

	// sections carry their own errors, so no goroutine fails the group
	var g errgroup.Group
	g.Go(func() error {
		stats, err := cached(s.cache, cacheKeyStats, s.cfg.Cache.StatsTTL(), func() (*entity.NetworkStats, error) {
			return s.client.GetNetworkStats(ctx)
		})
		page.Stats = entity.Section[*entity.NetworkStats]{Data: stats, Err: err}
		return nil
	})
	g.Go(func() error {
		blocks, err := cached(s.cache, fmt.Sprintf(cacheKeyBlocks, limit), s.cfg.Cache.ListTTL(), func() ([]entity.Block, error) {
			return s.client.GetLatestBlocks(ctx, limit)
		})
		page.Blocks = entity.Section[[]entity.Block]{Data: blocks, Err: err}
		return nil
	})
	g.Go(func() error {
		txs, err := cached(s.cache, fmt.Sprintf(cacheKeyTransactions, limit), s.cfg.Cache.ListTTL(), func() ([]entity.Transaction, error) {
			return s.client.GetLatestTransactions(ctx, limit)
		})
		page.Transactions = entity.Section[[]entity.Transaction]{Data: txs, Err: err}
		return nil
	})
	_ = g.Wait()

	for name, err := range map[string]error{"stats": page.Stats.Err, "blocks": page.Blocks.Err, "transactions": page.Transactions.Err} {
		if err != nil {
			s.logger.Warn("Home section failed", "section", name, "error", err)
		}
	}
	return page
}

// BatchesPage lists the newest batches.
func (s *explorerServiceImpl) BatchesPage(ctx context.Context) entity.BatchesPage {
	limit := s.cfg.Pages.LatestLimit
	batches, err := cached(s.cache, fmt.Sprintf(cacheKeyBatches, limit), s.cfg.Cache.ListTTL(), func() ([]entity.Batch, error) {
		return s.client.GetLatestBatches(ctx, limit)
	})
	if err != nil {
		s.logger.Warn("Failed to load latest batches", "error", err)
	}
	return entity.BatchesPage{Batches: entity.Section[[]entity.Batch]{Data: batches, Err: err}}
}

// TransactionPage rejects malformed hashes as not found without calling the node.
func (s *explorerServiceImpl) TransactionPage(ctx context.Context, hash string) entity.TransactionPage {
	page := entity.TransactionPage{Hash: hash, Transaction: entity.NotFound[entity.Transaction]()}
	if !search.IsTransactionHash(hash) {
		return page
	}

	if s.cfg.Pages.SurfaceLookupErrors {
		page.Transaction = s.client.FindTransaction(ctx, hash)
	} else {
		page.Transaction = entity.Found(s.client.GetTransaction(ctx, hash))
	}

	if tx := page.Transaction.Value(); tx != nil {
		switch tx.Type {
		case entity.TransactionTypeDeposit, entity.TransactionTypeWithdrawal:
			page.BridgeStatus = s.client.GetBridgeStatus(ctx, hash)
		}
	}
	return page
}

// BlockPage accepts a decimal number or a 32-byte hash.
func (s *explorerServiceImpl) BlockPage(ctx context.Context, id string) entity.BlockPage {
	page := entity.BlockPage{ID: id, Block: entity.NotFound[entity.Block]()}
	if !search.IsBlockNumber(id) && !search.IsTransactionHash(id) {
		return page
	}

	if s.cfg.Pages.SurfaceLookupErrors {
		page.Block = s.client.FindBlock(ctx, id)
	} else {
		page.Block = entity.Found(s.client.GetBlock(ctx, id))
	}

	block := page.Block.Value()
	if block == nil {
		return page
	}

	head, err := s.client.GetLatestBlockNumber(ctx)
	if err != nil {
		s.logger.Warn("Failed to get chain head, confirmations unknown", "block", block.Number, "error", err)
		return page
	}
	if head >= block.Number {
		page.Confirmations = head - block.Number + 1
	}
	return page
}

// AddressPage loads the account record and, when it exists, its balance, history, name and wallet policy.
func (s *explorerServiceImpl) AddressPage(ctx context.Context, address string, pageNumber int) entity.AddressPage {
	page := entity.AddressPage{AddressHash: address, Address: entity.NotFound[entity.Address]()}
	if !search.IsAddress(address) {
		return page
	}

	if s.cfg.Pages.SurfaceLookupErrors {
		page.Address = s.client.FindAddress(ctx, address)
	} else {
		page.Address = entity.Found(s.client.GetAddress(ctx, address))
	}

	addr := page.Address.Value()
	if addr == nil {
		return page
	}

	balance, err := s.client.GetAddressBalance(ctx, address)
	page.Balance = entity.Section[*big.Int]{Data: balance, Err: err}

	if pageNumber <= 0 {
		pageNumber = 1
	}
	txs, err := s.client.GetTransactionsByAddress(ctx, address, pageNumber, s.cfg.Pages.AddressPageSize)
	page.Transactions = entity.Section[*entity.AddressTransactions]{Data: txs, Err: err}
	if err != nil {
		s.logger.Warn("Failed to load address transactions", "address", address, "page", pageNumber, "error", err)
	}

	page.PrimaryName = s.client.ResolveAddress(ctx, address)

	if addr.Type.IsWallet() {
		page.Wallet = addr.WalletInfo
		if page.Wallet == nil {
			page.Wallet = s.client.GetWalletInfo(ctx, address)
		}
	}
	page.Staking = s.client.GetStakingInfo(ctx, address)
	return page
}

// BatchPage accepts "123", "batch:123" or a batch hash.
func (s *explorerServiceImpl) BatchPage(ctx context.Context, id string) entity.BatchPage {
	page := entity.BatchPage{ID: id, Batch: entity.NotFound[entity.Batch]()}

	key, ok := search.BatchNumber(id)
	if !ok {
		if !search.IsTransactionHash(id) {
			return page
		}
		key = id
	}

	if s.cfg.Pages.SurfaceLookupErrors {
		page.Batch = s.client.FindBatch(ctx, key)
	} else {
		page.Batch = entity.Found(s.client.GetBatch(ctx, key))
	}
	return page
}

// NamePage looks up a name-service record.
func (s *explorerServiceImpl) NamePage(ctx context.Context, name string) entity.NamePage {
	page := entity.NamePage{Name: name, Info: entity.NotFound[entity.NameInfo]()}
	if search.Classify(name) != search.CategoryName {
		return page
	}

	if s.cfg.Pages.SurfaceLookupErrors {
		page.Info = s.client.FindNameInfo(ctx, name)
	} else {
		page.Info = entity.Found(s.client.GetNameInfo(ctx, name))
	}
	return page
}

// Search forwards the query to the backing search service.
func (s *explorerServiceImpl) Search(ctx context.Context, query string) *entity.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return s.client.Search(ctx, query)
}
