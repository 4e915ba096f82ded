package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/app/port/mocks"
	"enterl2_explorer/internal/client"
	"enterl2_explorer/internal/domain/entity"
	"enterl2_explorer/internal/infrastructure/configloader"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	txHash  = "0x" + strings.Repeat("a", 64)
	address = "0x742d35Cc6634C0532925a3b8D4C9db96c4b4d8b0"
)

type fixture struct {
	rest    *mocks.MockRESTTransport
	rpc     *mocks.MockRPCTransport
	service port.ExplorerService
}

func newFixture(t *testing.T, mutate func(cfg *configloader.Config)) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	rest := mocks.NewMockRESTTransport(ctrl)
	rpc := mocks.NewMockRPCTransport(ctrl)

	cfg := configloader.Default()
	if mutate != nil {
		mutate(cfg)
	}
	c := client.NewExplorerClient(rest, rpc, zap.NewNop())
	return fixture{rest: rest, rpc: rpc, service: NewExplorerService(c, port.NopLogger{}, cfg)}
}

func reply(body string) func(context.Context, any, string, []any) error {
	return func(_ context.Context, out any, _ string, _ []any) error {
		return json.Unmarshal([]byte(body), out)
	}
}

func body(b string) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, out any) error {
		return json.Unmarshal([]byte(b), out)
	}
}

func TestHomePage_CachesSuccessfulSections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/stats", gomock.Any()).DoAndReturn(body(`{"latestBlock":100}`)).Times(1)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/blocks?limit=10", gomock.Any()).DoAndReturn(body(`[{"number":100},{"number":99}]`)).Times(1)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/transactions?limit=10", gomock.Any()).DoAndReturn(body(`[{"hash":"0x1"}]`)).Times(1)

	first := f.service.HomePage(ctx)
	second := f.service.HomePage(ctx)

	for _, page := range []entity.HomePage{first, second} {
		require.False(t, page.Stats.Failed())
		assert.Equal(t, uint64(100), page.Stats.Data.LatestBlock)
		assert.Len(t, page.Blocks.Data, 2)
		assert.Len(t, page.Transactions.Data, 1)
	}
}

func TestHomePage_SectionsFailIndependently(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	upstreamDown := &entity.HTTPStatusError{StatusCode: 503}
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/stats", gomock.Any()).Return(upstreamDown).Times(2)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/blocks?limit=10", gomock.Any()).DoAndReturn(body(`[{"number":5}]`)).Times(1)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/transactions?limit=10", gomock.Any()).Return(errors.New("timeout")).Times(2)

	page := f.service.HomePage(ctx)
	assert.True(t, page.Stats.Failed())
	assert.ErrorAs(t, page.Stats.Err, new(*entity.HTTPStatusError))
	assert.False(t, page.Blocks.Failed())
	assert.Len(t, page.Blocks.Data, 1)
	assert.True(t, page.Transactions.Failed())

	// failures are retried on the next render, successes come from the cache
	page = f.service.HomePage(ctx)
	assert.True(t, page.Stats.Failed())
	assert.Len(t, page.Blocks.Data, 1)
}

func TestBatchesPage(t *testing.T) {
	f := newFixture(t, nil)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/batches?limit=10", gomock.Any()).DoAndReturn(body(`[{"number":3,"status":"finalized"}]`))

	page := f.service.BatchesPage(context.Background())
	require.False(t, page.Batches.Failed())
	assert.Equal(t, entity.BatchStatusFinalized, page.Batches.Data[0].Status)
}

func TestTransactionPage_MalformedHashSkipsNode(t *testing.T) {
	f := newFixture(t, nil)

	page := f.service.TransactionPage(context.Background(), "0x1234")
	assert.Equal(t, entity.LookupNotFound, page.Transaction.Status)
}

func TestTransactionPage_RPCErrorRendersNotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getTransactionByHash", []any{txHash}).
		Return(&entity.RPCError{Code: -32000, Message: "internal"})

	page := f.service.TransactionPage(context.Background(), txHash)
	assert.Equal(t, entity.LookupNotFound, page.Transaction.Status)
	assert.Nil(t, page.Transaction.Value())
}

func TestTransactionPage_SurfaceLookupErrors(t *testing.T) {
	f := newFixture(t, func(cfg *configloader.Config) { cfg.Pages.SurfaceLookupErrors = true })
	f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getTransactionByHash", []any{txHash}).
		Return(&entity.RPCError{Code: -32000, Message: "internal"})

	page := f.service.TransactionPage(context.Background(), txHash)
	assert.Equal(t, entity.LookupFailed, page.Transaction.Status)
	assert.EqualError(t, page.Transaction.Err, "internal")
}

func TestTransactionPage_DepositLoadsBridgeStatus(t *testing.T) {
	f := newFixture(t, nil)
	gomock.InOrder(
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getTransactionByHash", []any{txHash}).
			DoAndReturn(reply(`{"hash":"` + txHash + `","type":1,"status":"confirmed","blockNumber":7}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "enterl2_getBridgeStatus", []any{txHash}).
			DoAndReturn(reply(`{"l1Status":"relayed"}`)),
	)

	page := f.service.TransactionPage(context.Background(), txHash)
	require.Equal(t, entity.LookupFound, page.Transaction.Status)
	assert.JSONEq(t, `{"l1Status":"relayed"}`, string(page.BridgeStatus))
}

func TestBlockPage_Confirmations(t *testing.T) {
	f := newFixture(t, nil)
	gomock.InOrder(
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getBlockByNumber", []any{"0xff", true}).
			DoAndReturn(reply(`{"number":255,"hash":"0xbeef"}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_blockNumber", gomock.Any()).
			DoAndReturn(reply(`"0x104"`)),
	)

	page := f.service.BlockPage(context.Background(), "255")
	require.Equal(t, entity.LookupFound, page.Block.Status)
	assert.Equal(t, uint64(6), page.Confirmations)
}

func TestBlockPage_HeadUnknown(t *testing.T) {
	f := newFixture(t, nil)
	gomock.InOrder(
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getBlockByHash", []any{txHash, true}).
			DoAndReturn(reply(`{"number":9}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_blockNumber", gomock.Any()).
			Return(errors.New("connection reset")),
	)

	page := f.service.BlockPage(context.Background(), txHash)
	require.Equal(t, entity.LookupFound, page.Block.Status)
	assert.Zero(t, page.Confirmations)
}

func TestBlockPage_InvalidID(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, entity.LookupNotFound, f.service.BlockPage(context.Background(), "latest").Block.Status)
}

func TestAddressPage_Wallet(t *testing.T) {
	f := newFixture(t, nil)
	gomock.InOrder(
		f.rest.EXPECT().Get(gomock.Any(), "/api/v1/addresses/"+address, gomock.Any()).
			DoAndReturn(body(`{"address":"` + address + `","type":"consumer_wallet","transactionCount":21}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "eth_getBalance", []any{address, "latest"}).
			DoAndReturn(reply(`"0xde0b6b3a7640000"`)),
		f.rest.EXPECT().Get(gomock.Any(), "/api/v1/addresses/"+address+"/transactions?page=2&limit=20", gomock.Any()).
			DoAndReturn(body(`{"transactions":[{"hash":"0x1"}],"total":21,"page":2,"limit":20}`)),
		f.rest.EXPECT().Get(gomock.Any(), "/api/v1/names/reverse/"+address, gomock.Any()).
			Return(&entity.HTTPStatusError{StatusCode: 404}),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "enterl2_getWalletInfo", []any{address}).
			DoAndReturn(reply(`{"type":"consumer","dailyLimit":"1000"}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "enterl2_getStakingInfo", []any{address}).
			DoAndReturn(reply(`null`)),
	)

	page := f.service.AddressPage(context.Background(), address, 2)
	require.Equal(t, entity.LookupFound, page.Address.Status)
	require.False(t, page.Balance.Failed())
	assert.Equal(t, "1000000000000000000", page.Balance.Data.String())
	require.False(t, page.Transactions.Failed())
	assert.False(t, page.Transactions.Data.HasNextPage())
	assert.Nil(t, page.PrimaryName)
	require.NotNil(t, page.Wallet)
	assert.Equal(t, "1000", page.Wallet.DailyLimit)
	assert.Nil(t, page.Staking)
}

func TestAddressPage_UnknownAddressStopsEarly(t *testing.T) {
	f := newFixture(t, nil)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/addresses/"+address, gomock.Any()).
		Return(&entity.HTTPStatusError{StatusCode: 404})

	page := f.service.AddressPage(context.Background(), address, 0)
	assert.Equal(t, entity.LookupNotFound, page.Address.Status)
	assert.Nil(t, page.Transactions.Data)
}

func TestAddressPage_MalformedAddress(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, entity.LookupNotFound, f.service.AddressPage(context.Background(), "alice", 1).Address.Status)
}

func TestBatchPage(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantMethod string
		wantParams []any
	}{
		{name: "plain number", id: "16", wantMethod: "enterl2_getBatchByNumber", wantParams: []any{"0x10"}},
		{name: "prefixed number", id: "batch:16", wantMethod: "enterl2_getBatchByNumber", wantParams: []any{"0x10"}},
		{name: "hash", id: txHash, wantMethod: "enterl2_getBatchByHash", wantParams: []any{txHash}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), tt.wantMethod, tt.wantParams).
				DoAndReturn(reply(`{"number":16,"status":"pending"}`))

			page := f.service.BatchPage(context.Background(), tt.id)
			require.Equal(t, entity.LookupFound, page.Batch.Status)
			assert.Equal(t, uint64(16), page.Batch.Entity.Number)
		})
	}

	f := newFixture(t, nil)
	assert.Equal(t, entity.LookupNotFound, f.service.BatchPage(context.Background(), "batch:x").Batch.Status)
}

func TestNamePage(t *testing.T) {
	f := newFixture(t, func(cfg *configloader.Config) { cfg.Pages.SurfaceLookupErrors = true })
	gomock.InOrder(
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "enterl2_getNameInfo", []any{"alice.l2"}).
			DoAndReturn(reply(`{"name":"alice.l2","owner":"` + address + `"}`)),
		f.rpc.EXPECT().Call(gomock.Any(), gomock.Any(), "enterl2_getNameInfo", []any{"bob"}).
			DoAndReturn(reply(`null`)),
	)

	page := f.service.NamePage(context.Background(), "alice.l2")
	require.Equal(t, entity.LookupFound, page.Info.Status)
	assert.Equal(t, address, page.Info.Entity.Owner)

	assert.Equal(t, entity.LookupNotFound, f.service.NamePage(context.Background(), "bob").Info.Status)
	assert.Equal(t, entity.LookupNotFound, f.service.NamePage(context.Background(), "not a name").Info.Status)
}

func TestSearch(t *testing.T) {
	f := newFixture(t, nil)
	f.rest.EXPECT().Get(gomock.Any(), "/api/v1/search?q=alice", gomock.Any()).
		DoAndReturn(body(`{"type":"name","result":{"name":"alice"}}`))

	result := f.service.Search(context.Background(), "  alice ")
	require.NotNil(t, result)
	assert.Equal(t, "name", result.Type)
	assert.Nil(t, f.service.Search(context.Background(), "   "))
}
