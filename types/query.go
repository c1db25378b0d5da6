package types

// NewViewAccountQuery returns a view_account query.
func NewViewAccountQuery(account AccountId, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewAccountFinality, q.ViewAccountBlockId, q.ViewAccountSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewAccountFinality {
			return RpcQueryRequestViewAccountFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewAccountBlockId {
			return RpcQueryRequestViewAccountBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewAccountSyncCheckpoint {
			return RpcQueryRequestViewAccountSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewCodeQuery returns a view_code query.
func NewViewCodeQuery(account AccountId, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewCodeFinality, q.ViewCodeBlockId, q.ViewCodeSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewCodeFinality {
			return RpcQueryRequestViewCodeFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewCodeBlockId {
			return RpcQueryRequestViewCodeBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewCodeSyncCheckpoint {
			return RpcQueryRequestViewCodeSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewStateQuery returns a view_state query over the keys starting with prefix.
// include_proof is left unset; set it on the variant if a proof is needed.
func NewViewStateQuery(account AccountId, prefix StoreKey, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewStateFinality, q.ViewStateBlockId, q.ViewStateSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewStateFinality {
			return RpcQueryRequestViewStateFinality{AccountId: account, PrefixBase64: prefix, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewStateBlockId {
			return RpcQueryRequestViewStateBlockId{AccountId: account, PrefixBase64: prefix, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewStateSyncCheckpoint {
			return RpcQueryRequestViewStateSyncCheckpoint{AccountId: account, PrefixBase64: prefix, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewAccessKeyQuery returns a view_access_key query.
func NewViewAccessKeyQuery(account AccountId, key PublicKey, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewAccessKeyFinality, q.ViewAccessKeyBlockId, q.ViewAccessKeySyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewAccessKeyFinality {
			return RpcQueryRequestViewAccessKeyFinality{AccountId: account, PublicKey: key, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewAccessKeyBlockId {
			return RpcQueryRequestViewAccessKeyBlockId{AccountId: account, PublicKey: key, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewAccessKeySyncCheckpoint {
			return RpcQueryRequestViewAccessKeySyncCheckpoint{AccountId: account, PublicKey: key, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewAccessKeyListQuery returns a view_access_key_list query.
func NewViewAccessKeyListQuery(account AccountId, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewAccessKeyListFinality, q.ViewAccessKeyListBlockId, q.ViewAccessKeyListSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewAccessKeyListFinality {
			return RpcQueryRequestViewAccessKeyListFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewAccessKeyListBlockId {
			return RpcQueryRequestViewAccessKeyListBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewAccessKeyListSyncCheckpoint {
			return RpcQueryRequestViewAccessKeyListSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return q
}

// NewCallFunctionQuery returns a call_function query for a view method.
// args is the base64 encoding of the method's JSON arguments.
func NewCallFunctionQuery(account AccountId, method string, args FunctionArgs, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.CallFunctionFinality, q.CallFunctionBlockId, q.CallFunctionSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestCallFunctionFinality {
			return RpcQueryRequestCallFunctionFinality{AccountId: account, MethodName: method, ArgsBase64: args, Finality: f}
		},
		func(id BlockId) RpcQueryRequestCallFunctionBlockId {
			return RpcQueryRequestCallFunctionBlockId{AccountId: account, MethodName: method, ArgsBase64: args, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestCallFunctionSyncCheckpoint {
			return RpcQueryRequestCallFunctionSyncCheckpoint{AccountId: account, MethodName: method, ArgsBase64: args, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewGasKeyNoncesQuery returns a view_gas_key_nonces query for the nonces
// of one gas key.
func NewViewGasKeyNoncesQuery(account AccountId, key PublicKey, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewGasKeyNoncesFinality, q.ViewGasKeyNoncesBlockId, q.ViewGasKeyNoncesSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewGasKeyNoncesFinality {
			return RpcQueryRequestViewGasKeyNoncesFinality{AccountId: account, PublicKey: key, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewGasKeyNoncesBlockId {
			return RpcQueryRequestViewGasKeyNoncesBlockId{AccountId: account, PublicKey: key, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewGasKeyNoncesSyncCheckpoint {
			return RpcQueryRequestViewGasKeyNoncesSyncCheckpoint{AccountId: account, PublicKey: key, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewGlobalContractCodeQuery returns a view_global_contract_code query for
// the global contract with the given code hash.
func NewViewGlobalContractCodeQuery(codeHash CryptoHash, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewGlobalContractCodeFinality, q.ViewGlobalContractCodeBlockId, q.ViewGlobalContractCodeSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewGlobalContractCodeFinality {
			return RpcQueryRequestViewGlobalContractCodeFinality{CodeHash: codeHash, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewGlobalContractCodeBlockId {
			return RpcQueryRequestViewGlobalContractCodeBlockId{CodeHash: codeHash, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewGlobalContractCodeSyncCheckpoint {
			return RpcQueryRequestViewGlobalContractCodeSyncCheckpoint{CodeHash: codeHash, SyncCheckpoint: c}
		},
	)
	return q
}

// NewViewGlobalContractCodeByAccountQuery returns a
// view_global_contract_code_by_account_id query for the global contract
// deployed by account.
func NewViewGlobalContractCodeByAccountQuery(account AccountId, at BlockRef) RpcQueryRequest {
	var q RpcQueryRequest
	q.ViewGlobalContractCodeByAccountIdFinality, q.ViewGlobalContractCodeByAccountIdBlockId, q.ViewGlobalContractCodeByAccountIdSyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcQueryRequestViewGlobalContractCodeByAccountIdFinality {
			return RpcQueryRequestViewGlobalContractCodeByAccountIdFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcQueryRequestViewGlobalContractCodeByAccountIdBlockId {
			return RpcQueryRequestViewGlobalContractCodeByAccountIdBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcQueryRequestViewGlobalContractCodeByAccountIdSyncCheckpoint {
			return RpcQueryRequestViewGlobalContractCodeByAccountIdSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return q
}

// Requests of the EXPERIMENTAL_* methods. They take the same arguments as the
// matching query kinds but carry no request_type.

func NewViewAccountRequest(account AccountId, at BlockRef) RpcViewAccountRequest {
	var r RpcViewAccountRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcViewAccountRequestFinality {
			return RpcViewAccountRequestFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcViewAccountRequestBlockId {
			return RpcViewAccountRequestBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcViewAccountRequestSyncCheckpoint {
			return RpcViewAccountRequestSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return r
}

func NewViewCodeRequest(account AccountId, at BlockRef) RpcViewCodeRequest {
	var r RpcViewCodeRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcViewCodeRequestFinality {
			return RpcViewCodeRequestFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcViewCodeRequestBlockId {
			return RpcViewCodeRequestBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcViewCodeRequestSyncCheckpoint {
			return RpcViewCodeRequestSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return r
}

func NewViewStateRequest(account AccountId, prefix StoreKey, at BlockRef) RpcViewStateRequest {
	var r RpcViewStateRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcViewStateRequestFinality {
			return RpcViewStateRequestFinality{AccountId: account, PrefixBase64: prefix, Finality: f}
		},
		func(id BlockId) RpcViewStateRequestBlockId {
			return RpcViewStateRequestBlockId{AccountId: account, PrefixBase64: prefix, BlockId: id}
		},
		func(c SyncCheckpoint) RpcViewStateRequestSyncCheckpoint {
			return RpcViewStateRequestSyncCheckpoint{AccountId: account, PrefixBase64: prefix, SyncCheckpoint: c}
		},
	)
	return r
}

func NewViewAccessKeyRequest(account AccountId, key PublicKey, at BlockRef) RpcViewAccessKeyRequest {
	var r RpcViewAccessKeyRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcViewAccessKeyRequestFinality {
			return RpcViewAccessKeyRequestFinality{AccountId: account, PublicKey: key, Finality: f}
		},
		func(id BlockId) RpcViewAccessKeyRequestBlockId {
			return RpcViewAccessKeyRequestBlockId{AccountId: account, PublicKey: key, BlockId: id}
		},
		func(c SyncCheckpoint) RpcViewAccessKeyRequestSyncCheckpoint {
			return RpcViewAccessKeyRequestSyncCheckpoint{AccountId: account, PublicKey: key, SyncCheckpoint: c}
		},
	)
	return r
}

func NewViewAccessKeyListRequest(account AccountId, at BlockRef) RpcViewAccessKeyListRequest {
	var r RpcViewAccessKeyListRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcViewAccessKeyListRequestFinality {
			return RpcViewAccessKeyListRequestFinality{AccountId: account, Finality: f}
		},
		func(id BlockId) RpcViewAccessKeyListRequestBlockId {
			return RpcViewAccessKeyListRequestBlockId{AccountId: account, BlockId: id}
		},
		func(c SyncCheckpoint) RpcViewAccessKeyListRequestSyncCheckpoint {
			return RpcViewAccessKeyListRequestSyncCheckpoint{AccountId: account, SyncCheckpoint: c}
		},
	)
	return r
}

func NewCallFunctionRequest(account AccountId, method string, args FunctionArgs, at BlockRef) RpcCallFunctionRequest {
	var r RpcCallFunctionRequest
	r.Finality, r.BlockId, r.SyncCheckpoint = byBlockRef(at,
		func(f Finality) RpcCallFunctionRequestFinality {
			return RpcCallFunctionRequestFinality{AccountId: account, MethodName: method, ArgsBase64: args, Finality: f}
		},
		func(id BlockId) RpcCallFunctionRequestBlockId {
			return RpcCallFunctionRequestBlockId{AccountId: account, MethodName: method, ArgsBase64: args, BlockId: id}
		},
		func(c SyncCheckpoint) RpcCallFunctionRequestSyncCheckpoint {
			return RpcCallFunctionRequestSyncCheckpoint{AccountId: account, MethodName: method, ArgsBase64: args, SyncCheckpoint: c}
		},
	)
	return r
}

// NewBlockRequest returns a block request for at.
func NewBlockRequest(at BlockRef) RpcBlockRequest {
	return at.BlockReference()
}

// NewGasPriceRequest returns a gas_price request for block id, or for the
// latest block when id is nil.
func NewGasPriceRequest(id *BlockId) RpcGasPriceRequest {
	return RpcGasPriceRequest{BlockId: id}
}

// TxStatusByHash asks for a transaction by hash and signer.
// An empty waitUntil leaves the node default in place.
func TxStatusByHash(hash CryptoHash, sender AccountId, waitUntil TxExecutionStatus) RpcTransactionStatusRequest {
	return RpcTransactionStatusRequest{
		TxHashSenderAccountId: &RpcTransactionStatusRequestTxHashSenderAccountId{
			TxHash:          hash,
			SenderAccountId: sender,
			WaitUntil:       waitFor(waitUntil),
		},
	}
}

// TxStatusBySignedTx asks for a transaction by its signed, encoded form.
func TxStatusBySignedTx(tx SignedTransaction, waitUntil TxExecutionStatus) RpcTransactionStatusRequest {
	return RpcTransactionStatusRequest{
		SignedTxBase64: &RpcTransactionStatusRequestSignedTxBase64{
			SignedTxBase64: tx,
			WaitUntil:      waitFor(waitUntil),
		},
	}
}

// NewSendTransactionRequest returns a send_tx request.
func NewSendTransactionRequest(tx SignedTransaction, waitUntil TxExecutionStatus) RpcSendTransactionRequest {
	return RpcSendTransactionRequest{SignedTxBase64: tx, WaitUntil: waitFor(waitUntil)}
}

// ValidatorsLatest asks for the validators of the current epoch.
func ValidatorsLatest() RpcValidatorRequest {
	latest := RpcValidatorRequestLatestLatest
	return RpcValidatorRequest{Latest: &latest}
}

// ValidatorsAtEpoch asks for the validators of the epoch with the given id.
func ValidatorsAtEpoch(epoch CryptoHash) RpcValidatorRequest {
	return RpcValidatorRequest{EpochId: &RpcValidatorRequestEpochId{EpochId: epoch}}
}

// ValidatorsAtBlock asks for the validators of the epoch containing block id.
func ValidatorsAtBlock(id BlockId) RpcValidatorRequest {
	return RpcValidatorRequest{BlockId: &RpcValidatorRequestBlockId{BlockId: id}}
}

func waitFor(s TxExecutionStatus) *TxExecutionStatus {
	if s == "" {
		return nil
	}
	return &s
}
