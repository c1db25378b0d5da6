package go_openrpc_near

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/etclabscore/go-openrpc-near/internal/fakenode"
	"github.com/etclabscore/go-openrpc-near/types"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func startNode(t *testing.T, node *fakenode.Node, opts ...Option) *Client {
	t.Helper()
	srv := node.Serve()
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func TestStatus(t *testing.T) {
	node := fakenode.New().Result(types.MethodStatus, fakenode.StatusResult)
	c := startNode(t, node)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "testnet", status.ChainId)
	assert.EqualValues(t, 177104418, status.SyncInfo.LatestBlockHeight)
	assert.Equal(t, types.CryptoHash("C1UHmyZQBR5fD2hgxHZ9iTxkF5Vv5GBXqFr5npPD7USV"), status.SyncInfo.LatestBlockHash)
	assert.Nil(t, status.ValidatorAccountId)
	require.Len(t, status.Validators, 2)

	reqs := node.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "status", reqs[0].Method)
	assert.JSONEq(t, `{}`, string(reqs[0].Params))
	assert.Equal(t, "application/json", reqs[0].Header.Get("Content-Type"))
}

func TestHealthNullResult(t *testing.T) {
	c := startNode(t, fakenode.New().Result(types.MethodHealth, "null"))
	_, err := c.Health(context.Background())
	require.NoError(t, err)
}

func TestQueryViewAccount(t *testing.T) {
	node := fakenode.New().Result(types.MethodQuery, `{
		"amount": "399992611103597728750000000",
		"locked": "0",
		"code_hash": "11111111111111111111111111111111",
		"storage_usage": 642,
		"storage_paid_at": 0,
		"block_height": 17795474,
		"block_hash": "9MjpcnwW3TSdzGweNfPbkx8M74q1XzUcT1PAN8G5bNDz"
	}`)
	c := startNode(t, node)

	res, err := c.Query(context.Background(), types.NewViewAccountQuery("alice.testnet", types.AtFinality(types.FinalityFinal)))
	require.NoError(t, err)
	require.NotNil(t, res.AccountView)
	assert.Equal(t, types.NearToken("399992611103597728750000000"), res.AccountView.Amount)

	params := string(node.Requests()[0].Params)
	assert.Equal(t, "view_account", gjson.Get(params, "request_type").String())
	assert.Equal(t, "alice.testnet", gjson.Get(params, "account_id").String())
	assert.Equal(t, "final", gjson.Get(params, "finality").String())
}

func TestUnknownAccountError(t *testing.T) {
	node := fakenode.New().Error(types.MethodQuery, http.StatusOK, fakenode.UnknownAccount("nope.testnet", 17795474, "9MjpcnwW3TSdzGweNfPbkx8M74q1XzUcT1PAN8G5bNDz"))
	c := startNode(t, node)

	_, err := c.Query(context.Background(), types.NewViewAccountQuery("nope.testnet", types.BlockRef{}))
	require.Error(t, err)

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, json2.E_SERVER, rpcErr.Code)
	assert.Equal(t, "Server error", rpcErr.Message)
	assert.Equal(t, HandlerError, rpcErr.Name)
	assert.Equal(t, "UNKNOWN_ACCOUNT", rpcErr.CauseName())
	assert.JSONEq(t, `"account nope.testnet does not exist while viewing"`, string(rpcErr.Data))

	info := string(rpcErr.Cause.Info)
	assert.Equal(t, "nope.testnet", gjson.Get(info, "requested_account_id").String())
	assert.EqualValues(t, 17795474, gjson.Get(info, "block_height").Uint())

	assert.True(t, IsHandlerError(err))
	assert.False(t, IsRequestValidationError(err))
	assert.False(t, IsInternalError(err))
	assert.Contains(t, err.Error(), "HANDLER_ERROR/UNKNOWN_ACCOUNT")
}

func TestErrorEnvelopeWithFailureStatus(t *testing.T) {
	c := startNode(t, fakenode.New().Error(types.MethodBlock, http.StatusInternalServerError, fakenode.InternalError("storage unavailable")))

	_, err := c.Block(context.Background(), types.NewBlockRequest(types.AtBlockHeight(1)))
	assert.True(t, IsInternalError(err))

	var pErr *ProtocolError
	assert.False(t, errors.As(err, &pErr))
}

func TestMethodNotFound(t *testing.T) {
	c := startNode(t, fakenode.New())

	err := c.Call(context.Background(), "light_client_proof", map[string]string{"type": "transaction"}, nil)
	require.Error(t, err)
	assert.True(t, IsRequestValidationError(err))

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, json2.E_NO_METHOD, rpcErr.Code)
	assert.Equal(t, "METHOD_NOT_FOUND", rpcErr.CauseName())
}

func TestProtocolErrors(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		envelope bool
		target   error
	}{
		{"html gateway page", http.StatusBadGateway, `<html>502 Bad Gateway</html>`, false, ErrMalformedEnvelope},
		{"not json-rpc", http.StatusOK, `{"chain_id":"testnet"}`, false, ErrMalformedEnvelope},
		{"missing result", http.StatusOK, ``, true, json2.ErrNullResult},
		{"mismatched id", http.StatusOK, `{"jsonrpc":"2.0","id":"not-the-request-id","result":{}}`, false, ErrMalformedEnvelope},
		{"failure status", http.StatusServiceUnavailable, `"result":{}`, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := fakenode.New()
			if tc.envelope {
				node.Envelope(types.MethodStatus, tc.status, tc.body)
			} else {
				node.Raw(types.MethodStatus, tc.status, tc.body)
			}
			c := startNode(t, node)

			_, err := c.Status(context.Background())
			require.Error(t, err)

			var pErr *ProtocolError
			require.True(t, errors.As(err, &pErr), err.Error())
			assert.Equal(t, tc.status, pErr.StatusCode)
			if tc.envelope {
				assert.Contains(t, string(pErr.Body), tc.body)
				assert.Equal(t, string(node.Requests()[0].ID), gjson.GetBytes(pErr.Body, "id").Raw)
			} else {
				assert.Equal(t, tc.body, string(pErr.Body))
			}
			if tc.target != nil {
				assert.True(t, errors.Is(err, tc.target))
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	c := startNode(t, fakenode.New().Result(types.MethodStatus, `{"chain_id": 5}`))

	_, err := c.Status(context.Background())
	var dErr *DecodeError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, "status", dErr.Method)

	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestTransportError(t *testing.T) {
	srv := fakenode.New().Serve()
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)
	_, err = c.Status(context.Background())

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "post", tErr.Op)
	assert.Equal(t, url, tErr.URL)
}

func TestContextCanceled(t *testing.T) {
	c := startNode(t, fakenode.New().Result(types.MethodStatus, fakenode.StatusResult))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Status(ctx)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRequestIDsAndHeaders(t *testing.T) {
	node := fakenode.New().Result(types.MethodGasPrice, `{"gas_price":"100000000"}`)
	c := startNode(t, node, WithHeader("X-Api-Key", "secret"), WithHTTPClient(&http.Client{}))

	for i := 0; i < 3; i++ {
		res, err := c.GasPrice(context.Background(), types.NewGasPriceRequest(nil))
		require.NoError(t, err)
		assert.Equal(t, types.NearToken("100000000"), res.GasPrice)
	}

	reqs := node.Requests()
	require.Len(t, reqs, 3)
	for _, r := range reqs {
		id := gjson.ParseBytes(r.ID)
		assert.Equal(t, gjson.Number, id.Type, "json2 encodes numeric ids")
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.JSONEq(t, `{}`, string(r.Params))
	}
}

// The request envelope comes from the json2 codec; the echoed id is checked
// against the one it picked.
func TestRequestEnvelope(t *testing.T) {
	body, err := json2.EncodeClientRequest(types.MethodStatus, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "2.0", gjson.GetBytes(body, "jsonrpc").String())
	assert.Equal(t, types.MethodStatus, gjson.GetBytes(body, "method").String())
	assert.JSONEq(t, `{}`, gjson.GetBytes(body, "params").Raw)

	id := gjson.GetBytes(body, "id").Uint()
	reply := fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"result":{"chain_id":"testnet"}}`, id)
	res, err := decodeResponse(http.StatusOK, []byte(reply), id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"chain_id":"testnet"}`, string(res))

	reply = fmt.Sprintf(`{"jsonrpc":"2.0","id":"%d","result":{}}`, id)
	_, err = decodeResponse(http.StatusOK, []byte(reply), id)
	assert.NoError(t, err, "string ids are accepted")

	_, err = decodeResponse(http.StatusOK, []byte(reply), id+1)
	var perr *ProtocolError
	require.True(t, errors.As(err, &perr))
	assert.True(t, errors.Is(err, ErrMalformedEnvelope))
}

func TestConcurrentCallsUseDistinctIDs(t *testing.T) {
	node := fakenode.New().Result(types.MethodHealth, "null")
	c := startNode(t, node)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Health(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ids := []string{}
	for _, r := range node.Requests() {
		ids = append(ids, string(r.ID))
	}
	sort.Strings(ids)
	for i := 1; i < len(ids); i++ {
		assert.NotEqual(t, ids[i-1], ids[i])
	}
	assert.Len(t, ids, n)
}

func TestTransactionMethods(t *testing.T) {
	node := fakenode.New().
		Result(types.MethodBroadcastTxAsync, `"6zgh2u9DqHHiXzdy9ouTP7oGky2T4nugqzqt9wJZwNFm"`).
		Result(types.MethodTx, `{"final_execution_status":"FINAL","status":{"SuccessValue":""}}`).
		Result(types.MethodValidators, `{"current_validators":[],"next_validators":[],"epoch_height":2461,"epoch_start_height":177071333}`)
	c := startNode(t, node)
	ctx := context.Background()

	hash, err := c.BroadcastTxAsync(ctx, types.NewSendTransactionRequest("DgAAAHNlbmRlci", ""))
	require.NoError(t, err)
	assert.Equal(t, types.CryptoHash("6zgh2u9DqHHiXzdy9ouTP7oGky2T4nugqzqt9wJZwNFm"), hash)

	tx, err := c.Tx(ctx, types.TxStatusByHash(hash, "sender.testnet", types.TxExecutionStatusFinal))
	require.NoError(t, err)
	assert.Equal(t, types.TxExecutionStatusFinal, tx.FinalExecutionStatus)
	assert.JSONEq(t, `{"SuccessValue":""}`, string(tx.Status))

	v, err := c.Validators(ctx, types.ValidatorsLatest())
	require.NoError(t, err)
	assert.EqualValues(t, 2461, v.EpochHeight)

	reqs := node.Requests()
	require.Len(t, reqs, 3)
	assert.JSONEq(t, `{"signed_tx_base64":"DgAAAHNlbmRlci"}`, string(reqs[0].Params))
	assert.Equal(t, "sender.testnet", gjson.GetBytes(reqs[1].Params, "sender_account_id").String())
	assert.Equal(t, `"latest"`, string(reqs[2].Params))
}

func TestChainInfoMethods(t *testing.T) {
	node := fakenode.New().
		Result(types.MethodNetworkInfo, `{
			"active_peers": [{"id": "ed25519:8Uo1", "addr": "34.94.158.10:24567", "account_id": null}],
			"num_active_peers": 1,
			"peer_max_count": 40,
			"known_producers": [{"account_id": "node0", "peer_id": "ed25519:8Uo1"}],
			"sent_bytes_per_sec": 17754754,
			"received_bytes_per_sec": 492116
		}`).
		Result(types.MethodGenesisConfig, `{
			"chain_id": "mainnet",
			"genesis_height": 9820210,
			"genesis_time": "2020-07-21T16:55:51.591948Z",
			"epoch_length": 43200,
			"num_block_producer_seats": 100,
			"protocol_version": 29,
			"total_supply": "1000000000000000000000000000000000",
			"validators": [{"account_id": "node0", "public_key": "ed25519:6DSj", "amount": "1000000000000000000000000000000"}]
		}`).
		Result(types.MethodMaintenanceWindows, `[{"start": 1028, "end": 1031}, {"start": 1034, "end": 1038}]`).
		Result(types.MethodExperimentalValidatorsOrdered, `[{"account_id": "node0", "public_key": "ed25519:6DSj", "stake": "1"}]`)
	c := startNode(t, node)
	ctx := context.Background()

	info, err := c.NetworkInfo(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.NumActivePeers)
	require.Len(t, info.ActivePeers, 1)
	assert.Nil(t, info.ActivePeers[0].AccountId)
	require.NotNil(t, info.ActivePeers[0].Addr)
	assert.Equal(t, types.AccountId("node0"), info.KnownProducers[0].AccountId)

	genesis, err := c.GenesisConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", genesis.ChainId)
	assert.EqualValues(t, 43200, genesis.EpochLength)
	require.Len(t, genesis.Validators, 1)

	windows, err := c.MaintenanceWindows(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlockHeightRanges{{Start: 1028, End: 1031}, {Start: 1034, End: 1038}}, windows)

	ordered, err := c.ValidatorsOrdered(ctx, types.NewValidatorsOrderedRequest(nil))
	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, types.NearToken("1"), ordered[0].Stake)

	reqs := node.Requests()
	require.Len(t, reqs, 4)
	for _, r := range reqs[:3] {
		assert.JSONEq(t, `{}`, string(r.Params), r.Method)
	}
	assert.Equal(t, "EXPERIMENTAL_validators_ordered", reqs[3].Method)
	assert.JSONEq(t, `{}`, string(reqs[3].Params))
}

func TestChunkAndChangesMethods(t *testing.T) {
	node := fakenode.New().
		Result(types.MethodChunk, `{
			"author": "bee1.testnet",
			"header": {"chunk_hash": "EBM2qg", "shard_id": 0, "height_created": 58934027, "gas_used": 0, "gas_limit": 1000000000000000, "balance_burnt": "0"},
			"transactions": [],
			"receipts": [{"predecessor_id": "system", "receiver_id": "alice.testnet", "receipt_id": "2hWqKz", "receipt": {"Action": {}}}]
		}`).
		Result(types.MethodExperimentalChanges, `{
			"block_hash": "6xsfPSG89s",
			"changes": [{"cause": {"type": "transaction_processing", "tx_hash": "HLvxLK"}, "type": "account_update", "change": {"account_id": "alice.near"}}]
		}`).
		Result(types.MethodBlockEffects, `{
			"block_hash": "6xsfPSG89s",
			"changes": [{"type": "account_touched", "account_id": "alice.near"}]
		}`).
		Result(types.MethodExperimentalCongestionLevel, `{"congestion_level": 0.25}`)
	c := startNode(t, node)
	ctx := context.Background()

	chunk, err := c.Chunk(ctx, types.ChunkInBlock(types.BlockIdAtHeight(58934027), 0))
	require.NoError(t, err)
	assert.Equal(t, types.CryptoHash("EBM2qg"), chunk.Header.ChunkHash)
	require.Len(t, chunk.Receipts, 1)
	assert.JSONEq(t, `{"Action":{}}`, string(chunk.Receipts[0].Receipt))

	changes, err := c.Changes(ctx, types.DataChanges([]types.AccountId{"alice.near"}, "", types.AtFinality(types.FinalityFinal)))
	require.NoError(t, err)
	require.Len(t, changes.Changes, 1)
	assert.Equal(t, "account_update", changes.Changes[0].Type)

	effects, err := c.BlockEffects(ctx, types.NewChangesInBlockRequest(types.AtBlockHash("6xsfPSG89s")))
	require.NoError(t, err)
	require.Len(t, effects.Changes, 1)
	assert.Equal(t, types.AccountId("alice.near"), effects.Changes[0].AccountId)

	level, err := c.CongestionLevel(ctx, types.ChunkByHash("EBM2qg"))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, level.CongestionLevel, 1e-9)

	reqs := node.Requests()
	require.Len(t, reqs, 4)
	assert.JSONEq(t, `{"block_id":58934027,"shard_id":0}`, string(reqs[0].Params))
	assert.Equal(t, "data_changes", gjson.GetBytes(reqs[1].Params, "changes_type").String())
	assert.Equal(t, "final", gjson.GetBytes(reqs[1].Params, "finality").String())
	assert.JSONEq(t, `{"block_id":"6xsfPSG89s"}`, string(reqs[2].Params))
	assert.JSONEq(t, `{"chunk_id":"EBM2qg"}`, string(reqs[3].Params))
}

func TestLightClientProof(t *testing.T) {
	node := fakenode.New().Result(types.MethodLightClientProof, `{
		"outcome_proof": {
			"proof": [{"hash": "B1Kx1m", "direction": "Right"}],
			"block_hash": "BR2bbs",
			"id": "8HoqDv",
			"outcome": {"logs": [], "receipt_ids": [], "gas_burnt": 2428395018008, "tokens_burnt": "242839501800800000000", "executor_id": "relay.aurora", "status": {"SuccessValue": ""}}
		},
		"outcome_root_proof": [],
		"block_header_lite": {"prev_block_hash": "4Ss2Vr", "inner_rest_hash": "GhBWqK", "inner_lite": {}},
		"block_proof": [{"hash": "3gAjUb", "direction": "Left"}]
	}`)
	c := startNode(t, node)

	proof, err := c.LightClientProof(context.Background(), types.TransactionProof("8HoqDv", "relay.aurora", "14gQvv"))
	require.NoError(t, err)
	require.Len(t, proof.OutcomeProof.Proof, 1)
	assert.Equal(t, types.MerklePathItemDirectionRight, proof.OutcomeProof.Proof[0].Direction)
	require.Len(t, proof.BlockProof, 1)
	assert.Equal(t, types.MerklePathItemDirectionLeft, proof.BlockProof[0].Direction)
	assert.Empty(t, proof.OutcomeRootProof)

	params := node.Requests()[0].Params
	assert.Equal(t, "transaction", gjson.GetBytes(params, "type").String())
	assert.Equal(t, "relay.aurora", gjson.GetBytes(params, "sender_id").String())
}

func TestEncodeFailureSendsNothing(t *testing.T) {
	node := fakenode.New()
	c := startNode(t, node)

	_, err := c.Query(context.Background(), types.RpcQueryRequest{})
	require.Error(t, err)
	assert.Empty(t, node.Requests())
}

func TestDebugTracing(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	node := fakenode.New().Result(types.MethodStatus, fakenode.StatusResult)
	c := startNode(t, node, WithLogger(logger))

	_, err := c.Status(context.Background())
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level)
		assert.Equal(t, "status", e.Data["method"])
		assert.IsType(t, uint64(0), e.Data["id"])
	}
	assert.Equal(t, entries[0].Data["id"], entries[1].Data["id"])
	reqs := node.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, gjson.ParseBytes(reqs[0].ID).Uint(), entries[0].Data["id"])
	assert.Equal(t, http.StatusOK, entries[1].Data["status"])
}

func TestNetworks(t *testing.T) {
	c, err := NewForNetwork("")
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.mainnet.near.org", c.Endpoint())

	assert.Equal(t, "https://rpc.testnet.near.org", Testnet().Endpoint())
	assert.Equal(t, "https://rpc.betanet.near.org", Betanet().Endpoint())
	assert.Equal(t, "http://localhost:3030", Localnet().Endpoint())
	assert.Equal(t, "https://rpc.mainnet.near.org", Mainnet().Endpoint())

	_, err = NewForNetwork("devnet")
	assert.True(t, errors.Is(err, ErrUnknownNetwork))

	n, err := ParseNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, n)
	_, err = ParseNetwork("Testnet")
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
}

func TestNewRejectsBadEndpoints(t *testing.T) {
	for _, endpoint := range []string{"", "rpc.mainnet.near.org", "ftp://rpc.mainnet.near.org", "https://", "http://[::1"} {
		_, err := New(endpoint)
		assert.True(t, errors.Is(err, ErrInvalidEndpoint), endpoint)
	}
}
