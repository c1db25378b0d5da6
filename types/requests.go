package types

// ChunkByHash asks for a chunk by its hash.
func ChunkByHash(chunk CryptoHash) ChunkReference {
	return ChunkReference{ChunkHash: &ChunkReferenceChunkHash{ChunkId: chunk}}
}

// ChunkInBlock asks for the chunk of shard in block id.
func ChunkInBlock(id BlockId, shard uint64) ChunkReference {
	return ChunkReference{BlockShardId: &ChunkReferenceBlockShardId{BlockId: id, ShardId: shard}}
}

// NewValidatorsOrderedRequest returns an EXPERIMENTAL_validators_ordered
// request for block id, or for the latest block when id is nil.
func NewValidatorsOrderedRequest(id *BlockId) RpcValidatorsOrderedRequest {
	return RpcValidatorsOrderedRequest{BlockId: id}
}

// TransactionProof asks for the execution proof of a transaction, checked
// against the light client head.
func TransactionProof(tx CryptoHash, sender AccountId, head CryptoHash) RpcLightClientExecutionProofRequest {
	return RpcLightClientExecutionProofRequest{
		Transaction: &RpcLightClientExecutionProofRequestTransaction{
			TransactionHash: tx,
			SenderId:        sender,
			LightClientHead: head,
		},
	}
}

// ReceiptProof asks for the execution proof of a receipt, checked against the
// light client head.
func ReceiptProof(receipt CryptoHash, receiver AccountId, head CryptoHash) RpcLightClientExecutionProofRequest {
	return RpcLightClientExecutionProofRequest{
		Receipt: &RpcLightClientExecutionProofRequestReceipt{
			ReceiptId:       receipt,
			ReceiverId:      receiver,
			LightClientHead: head,
		},
	}
}

// NewChangesInBlockRequest returns an EXPERIMENTAL_changes_in_block or
// block_effects request for at.
func NewChangesInBlockRequest(at BlockRef) RpcStateChangesInBlockRequest {
	return at.BlockReference()
}

// NewProtocolConfigRequest returns an EXPERIMENTAL_protocol_config request for at.
func NewProtocolConfigRequest(at BlockRef) RpcProtocolConfigRequest {
	return at.BlockReference()
}

// AccountChanges asks for changes of the accounts themselves.
func AccountChanges(accounts []AccountId, at BlockRef) RpcStateChangesInBlockByTypeRequest {
	var r RpcStateChangesInBlockByTypeRequest
	r.AccountChangesFinality, r.AccountChangesBlockId, r.AccountChangesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcStateChangesInBlockByTypeRequestAccountChangesFinality {
			return RpcStateChangesInBlockByTypeRequestAccountChangesFinality{AccountIds: accounts, Finality: f}
		},
		func(id BlockId) RpcStateChangesInBlockByTypeRequestAccountChangesBlockId {
			return RpcStateChangesInBlockByTypeRequestAccountChangesBlockId{AccountIds: accounts, BlockId: id}
		},
		func(c SyncCheckpoint) RpcStateChangesInBlockByTypeRequestAccountChangesSyncCheckpoint {
			return RpcStateChangesInBlockByTypeRequestAccountChangesSyncCheckpoint{AccountIds: accounts, SyncCheckpoint: c}
		},
	)
	return r
}

// SingleAccessKeyChanges asks for changes of the listed access keys.
func SingleAccessKeyChanges(keys []AccountWithPublicKey, at BlockRef) RpcStateChangesInBlockByTypeRequest {
	var r RpcStateChangesInBlockByTypeRequest
	r.SingleAccessKeyChangesFinality, r.SingleAccessKeyChangesBlockId, r.SingleAccessKeyChangesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesFinality {
			return RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesFinality{Keys: keys, Finality: f}
		},
		func(id BlockId) RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesBlockId {
			return RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesBlockId{Keys: keys, BlockId: id}
		},
		func(c SyncCheckpoint) RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesSyncCheckpoint {
			return RpcStateChangesInBlockByTypeRequestSingleAccessKeyChangesSyncCheckpoint{Keys: keys, SyncCheckpoint: c}
		},
	)
	return r
}

// AllAccessKeyChanges asks for changes of every access key of the accounts.
func AllAccessKeyChanges(accounts []AccountId, at BlockRef) RpcStateChangesInBlockByTypeRequest {
	var r RpcStateChangesInBlockByTypeRequest
	r.AllAccessKeyChangesFinality, r.AllAccessKeyChangesBlockId, r.AllAccessKeyChangesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesFinality {
			return RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesFinality{AccountIds: accounts, Finality: f}
		},
		func(id BlockId) RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesBlockId {
			return RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesBlockId{AccountIds: accounts, BlockId: id}
		},
		func(c SyncCheckpoint) RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesSyncCheckpoint {
			return RpcStateChangesInBlockByTypeRequestAllAccessKeyChangesSyncCheckpoint{AccountIds: accounts, SyncCheckpoint: c}
		},
	)
	return r
}

// ContractCodeChanges asks for contract deployments on the accounts.
func ContractCodeChanges(accounts []AccountId, at BlockRef) RpcStateChangesInBlockByTypeRequest {
	var r RpcStateChangesInBlockByTypeRequest
	r.ContractCodeChangesFinality, r.ContractCodeChangesBlockId, r.ContractCodeChangesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcStateChangesInBlockByTypeRequestContractCodeChangesFinality {
			return RpcStateChangesInBlockByTypeRequestContractCodeChangesFinality{AccountIds: accounts, Finality: f}
		},
		func(id BlockId) RpcStateChangesInBlockByTypeRequestContractCodeChangesBlockId {
			return RpcStateChangesInBlockByTypeRequestContractCodeChangesBlockId{AccountIds: accounts, BlockId: id}
		},
		func(c SyncCheckpoint) RpcStateChangesInBlockByTypeRequestContractCodeChangesSyncCheckpoint {
			return RpcStateChangesInBlockByTypeRequestContractCodeChangesSyncCheckpoint{AccountIds: accounts, SyncCheckpoint: c}
		},
	)
	return r
}

// DataChanges asks for contract storage changes under prefix.
func DataChanges(accounts []AccountId, prefix StoreKey, at BlockRef) RpcStateChangesInBlockByTypeRequest {
	var r RpcStateChangesInBlockByTypeRequest
	r.DataChangesFinality, r.DataChangesBlockId, r.DataChangesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcStateChangesInBlockByTypeRequestDataChangesFinality {
			return RpcStateChangesInBlockByTypeRequestDataChangesFinality{AccountIds: accounts, KeyPrefixBase64: prefix, Finality: f}
		},
		func(id BlockId) RpcStateChangesInBlockByTypeRequestDataChangesBlockId {
			return RpcStateChangesInBlockByTypeRequestDataChangesBlockId{AccountIds: accounts, KeyPrefixBase64: prefix, BlockId: id}
		},
		func(c SyncCheckpoint) RpcStateChangesInBlockByTypeRequestDataChangesSyncCheckpoint {
			return RpcStateChangesInBlockByTypeRequestDataChangesSyncCheckpoint{AccountIds: accounts, KeyPrefixBase64: prefix, SyncCheckpoint: c}
		},
	)
	return r
}
