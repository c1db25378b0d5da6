package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestStateChangesRequests(t *testing.T) {
	accounts := []AccountId{"alice.near", "bob.near"}
	cases := []struct {
		name string
		req  RpcStateChangesInBlockByTypeRequest
		want string
	}{
		{
			"account changes at finality",
			AccountChanges(accounts, AtFinality(FinalityFinal)),
			`{"account_ids":["alice.near","bob.near"],"changes_type":"account_changes","finality":"final"}`,
		},
		{
			"single access key changes at height",
			SingleAccessKeyChanges([]AccountWithPublicKey{{AccountId: "alice.near", PublicKey: "ed25519:abc"}}, AtBlockHeight(5)),
			`{"block_id":5,"changes_type":"single_access_key_changes","keys":[{"account_id":"alice.near","public_key":"ed25519:abc"}]}`,
		},
		{
			"all access key changes at checkpoint",
			AllAccessKeyChanges(accounts, AtSyncCheckpoint(SyncCheckpointGenesis)),
			`{"account_ids":["alice.near","bob.near"],"changes_type":"all_access_key_changes","sync_checkpoint":"genesis"}`,
		},
		{
			"contract code changes at hash",
			ContractCodeChanges(accounts, AtBlockHash("9Hzdj3")),
			`{"account_ids":["alice.near","bob.near"],"block_id":"9Hzdj3","changes_type":"contract_code_changes"}`,
		},
		{
			"data changes under prefix",
			DataChanges([]AccountId{"wrap.near"}, "U1RBVEU=", BlockRef{}),
			`{"account_ids":["wrap.near"],"changes_type":"data_changes","finality":"final","key_prefix_base64":"U1RBVEU="}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := json.Marshal(c.req)
			require.NoError(t, err)
			assert.JSONEq(t, c.want, string(b))

			var back RpcStateChangesInBlockByTypeRequest
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, c.req, back)
		})
	}
}

func TestAccountAndContractCodeChangesDifferOnlyByTag(t *testing.T) {
	var r RpcStateChangesInBlockByTypeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"changes_type":"contract_code_changes","account_ids":["a.near"],"finality":"final"}`), &r))
	assert.Nil(t, r.AccountChangesFinality)
	require.NotNil(t, r.ContractCodeChangesFinality)
	assert.Equal(t, []AccountId{"a.near"}, r.ContractCodeChangesFinality.AccountIds)
}

func TestChunkReferences(t *testing.T) {
	b, err := json.Marshal(ChunkByHash("EBM2qg"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"chunk_id":"EBM2qg"}`, string(b))

	b, err = json.Marshal(ChunkInBlock(BlockIdAtHeight(58934027), 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"block_id":58934027,"shard_id":0}`, string(b))

	var r RpcCongestionLevelRequest
	require.NoError(t, json.Unmarshal(b, &r))
	require.NotNil(t, r.BlockShardId)
	assert.Nil(t, r.ChunkHash)
}

func TestLightClientProofRequests(t *testing.T) {
	b, err := json.Marshal(TransactionProof("4Ut6Pf", "sender.near", "14gQvv"))
	require.NoError(t, err)
	assert.Equal(t, "transaction", gjson.GetBytes(b, "type").String())
	assert.Equal(t, "4Ut6Pf", gjson.GetBytes(b, "transaction_hash").String())
	assert.Equal(t, "sender.near", gjson.GetBytes(b, "sender_id").String())
	assert.Equal(t, "14gQvv", gjson.GetBytes(b, "light_client_head").String())

	b, err = json.Marshal(ReceiptProof("2hWqKz", "receiver.near", "14gQvv"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"receipt","receipt_id":"2hWqKz","receiver_id":"receiver.near","light_client_head":"14gQvv"}`, string(b))

	var back RpcLightClientExecutionProofRequest
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Nil(t, back.Transaction)
	require.NotNil(t, back.Receipt)
	assert.Equal(t, AccountId("receiver.near"), back.Receipt.ReceiverId)
}

func TestBlockScopedRequests(t *testing.T) {
	b, err := json.Marshal(NewChangesInBlockRequest(AtBlockHeight(3)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"block_id":3}`, string(b))

	b, err = json.Marshal(NewProtocolConfigRequest(BlockRef{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"finality":"final"}`, string(b))

	b, err = json.Marshal(NewValidatorsOrderedRequest(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	id := BlockIdAtHeight(11)
	b, err = json.Marshal(NewValidatorsOrderedRequest(&id))
	require.NoError(t, err)
	assert.JSONEq(t, `{"block_id":11}`, string(b))
}
