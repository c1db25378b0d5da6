package go_openrpc_near

import (
	"context"

	"github.com/etclabscore/go-openrpc-near/types"
)

// Status returns the node status: chain id, protocol versions and sync state.
func (c *Client) Status(ctx context.Context) (*types.RpcStatusResponse, error) {
	var res types.RpcStatusResponse
	if err := c.Call(ctx, types.MethodStatus, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Health succeeds when the node reports itself healthy.
func (c *Client) Health(ctx context.Context) (*types.RpcHealthResponse, error) {
	var res types.RpcHealthResponse
	if err := c.Call(ctx, types.MethodHealth, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Block(ctx context.Context, req types.RpcBlockRequest) (*types.RpcBlockResponse, error) {
	var res types.RpcBlockResponse
	if err := c.Call(ctx, types.MethodBlock, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GasPrice(ctx context.Context, req types.RpcGasPriceRequest) (*types.RpcGasPriceResponse, error) {
	var res types.RpcGasPriceResponse
	if err := c.Call(ctx, types.MethodGasPrice, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Query runs one of the query request types; the variant set in the
// response follows the request_type sent.
func (c *Client) Query(ctx context.Context, req types.RpcQueryRequest) (*types.RpcQueryResponse, error) {
	var res types.RpcQueryResponse
	if err := c.Call(ctx, types.MethodQuery, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ViewAccount calls EXPERIMENTAL_view_account.
func (c *Client) ViewAccount(ctx context.Context, req types.RpcViewAccountRequest) (*types.RpcViewAccountResponse, error) {
	var res types.RpcViewAccountResponse
	if err := c.Call(ctx, types.MethodExperimentalViewAccount, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ViewCode calls EXPERIMENTAL_view_code.
func (c *Client) ViewCode(ctx context.Context, req types.RpcViewCodeRequest) (*types.RpcViewCodeResponse, error) {
	var res types.RpcViewCodeResponse
	if err := c.Call(ctx, types.MethodExperimentalViewCode, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ViewState calls EXPERIMENTAL_view_state.
func (c *Client) ViewState(ctx context.Context, req types.RpcViewStateRequest) (*types.RpcViewStateResponse, error) {
	var res types.RpcViewStateResponse
	if err := c.Call(ctx, types.MethodExperimentalViewState, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ViewAccessKey calls EXPERIMENTAL_view_access_key.
func (c *Client) ViewAccessKey(ctx context.Context, req types.RpcViewAccessKeyRequest) (*types.RpcViewAccessKeyResponse, error) {
	var res types.RpcViewAccessKeyResponse
	if err := c.Call(ctx, types.MethodExperimentalViewAccessKey, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ViewAccessKeyList calls EXPERIMENTAL_view_access_key_list.
func (c *Client) ViewAccessKeyList(ctx context.Context, req types.RpcViewAccessKeyListRequest) (*types.RpcViewAccessKeyListResponse, error) {
	var res types.RpcViewAccessKeyListResponse
	if err := c.Call(ctx, types.MethodExperimentalViewAccessKeyList, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CallFunction calls EXPERIMENTAL_call_function, a read-only contract call.
func (c *Client) CallFunction(ctx context.Context, req types.RpcCallFunctionRequest) (*types.RpcCallFunctionResponse, error) {
	var res types.RpcCallFunctionResponse
	if err := c.Call(ctx, types.MethodExperimentalCallFunction, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendTransaction submits a signed transaction and waits as long as
// req.WaitUntil asks.
func (c *Client) SendTransaction(ctx context.Context, req types.RpcSendTransactionRequest) (*types.RpcTransactionResponse, error) {
	var res types.RpcTransactionResponse
	if err := c.Call(ctx, types.MethodSendTx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BroadcastTxAsync submits a signed transaction and returns its hash
// without waiting for it to be included.
func (c *Client) BroadcastTxAsync(ctx context.Context, req types.RpcSendTransactionRequest) (types.CryptoHash, error) {
	var res types.CryptoHash
	if err := c.Call(ctx, types.MethodBroadcastTxAsync, req, &res); err != nil {
		return "", err
	}
	return res, nil
}

func (c *Client) BroadcastTxCommit(ctx context.Context, req types.RpcSendTransactionRequest) (*types.RpcTransactionResponse, error) {
	var res types.RpcTransactionResponse
	if err := c.Call(ctx, types.MethodBroadcastTxCommit, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Tx looks up the status of a transaction.
func (c *Client) Tx(ctx context.Context, req types.RpcTransactionStatusRequest) (*types.RpcTransactionResponse, error) {
	var res types.RpcTransactionResponse
	if err := c.Call(ctx, types.MethodTx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Validators(ctx context.Context, req types.RpcValidatorRequest) (*types.RpcValidatorResponse, error) {
	var res types.RpcValidatorResponse
	if err := c.Call(ctx, types.MethodValidators, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// NetworkInfo returns the peers the node is connected to and its traffic rates.
func (c *Client) NetworkInfo(ctx context.Context) (*types.RpcNetworkInfoResponse, error) {
	var res types.RpcNetworkInfoResponse
	if err := c.Call(ctx, types.MethodNetworkInfo, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Chunk returns a chunk by hash, or by block and shard.
func (c *Client) Chunk(ctx context.Context, req types.RpcChunkRequest) (*types.RpcChunkResponse, error) {
	var res types.RpcChunkResponse
	if err := c.Call(ctx, types.MethodChunk, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ValidatorsOrdered calls EXPERIMENTAL_validators_ordered.
func (c *Client) ValidatorsOrdered(ctx context.Context, req types.RpcValidatorsOrderedRequest) (types.ValidatorStakeViews, error) {
	var res types.ValidatorStakeViews
	if err := c.Call(ctx, types.MethodExperimentalValidatorsOrdered, req, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// LightClientProof returns the proof that a transaction or receipt outcome
// is included in a block known to the light client head.
func (c *Client) LightClientProof(ctx context.Context, req types.RpcLightClientExecutionProofRequest) (*types.RpcLightClientExecutionProofResponse, error) {
	var res types.RpcLightClientExecutionProofResponse
	if err := c.Call(ctx, types.MethodLightClientProof, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) NextLightClientBlock(ctx context.Context, req types.RpcLightClientNextBlockRequest) (*types.RpcLightClientNextBlockResponse, error) {
	var res types.RpcLightClientNextBlockResponse
	if err := c.Call(ctx, types.MethodNextLightClientBlock, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LightClientBlockProof(ctx context.Context, req types.RpcLightClientBlockProofRequest) (*types.RpcLightClientBlockProofResponse, error) {
	var res types.RpcLightClientBlockProofResponse
	if err := c.Call(ctx, types.MethodLightClientBlockProof, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ChangesInBlock calls EXPERIMENTAL_changes_in_block.
func (c *Client) ChangesInBlock(ctx context.Context, req types.RpcStateChangesInBlockRequest) (*types.RpcStateChangesInBlockByTypeResponse, error) {
	var res types.RpcStateChangesInBlockByTypeResponse
	if err := c.Call(ctx, types.MethodExperimentalChangesInBlock, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BlockEffects is the stable name of ChangesInBlock.
func (c *Client) BlockEffects(ctx context.Context, req types.RpcStateChangesInBlockRequest) (*types.RpcStateChangesInBlockByTypeResponse, error) {
	var res types.RpcStateChangesInBlockByTypeResponse
	if err := c.Call(ctx, types.MethodBlockEffects, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Changes calls EXPERIMENTAL_changes for one kind of state change.
func (c *Client) Changes(ctx context.Context, req types.RpcStateChangesInBlockByTypeRequest) (*types.RpcStateChangesInBlockResponse, error) {
	var res types.RpcStateChangesInBlockResponse
	if err := c.Call(ctx, types.MethodExperimentalChanges, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ProtocolConfig calls EXPERIMENTAL_protocol_config.
func (c *Client) ProtocolConfig(ctx context.Context, req types.RpcProtocolConfigRequest) (*types.RpcProtocolConfigResponse, error) {
	var res types.RpcProtocolConfigResponse
	if err := c.Call(ctx, types.MethodExperimentalProtocolConfig, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GenesisConfig(ctx context.Context) (*types.GenesisConfig, error) {
	var res types.GenesisConfig
	if err := c.Call(ctx, types.MethodGenesisConfig, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ClientConfig(ctx context.Context) (*types.RpcClientConfigResponse, error) {
	var res types.RpcClientConfigResponse
	if err := c.Call(ctx, types.MethodClientConfig, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Receipt calls EXPERIMENTAL_receipt.
func (c *Client) Receipt(ctx context.Context, req types.RpcReceiptRequest) (*types.RpcReceiptResponse, error) {
	var res types.RpcReceiptResponse
	if err := c.Call(ctx, types.MethodExperimentalReceipt, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MaintenanceWindows returns the block height ranges of the current epoch in
// which the node has no block or chunk to produce.
func (c *Client) MaintenanceWindows(ctx context.Context) (types.BlockHeightRanges, error) {
	var res types.BlockHeightRanges
	if err := c.Call(ctx, types.MethodMaintenanceWindows, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SplitStorageInfo calls EXPERIMENTAL_split_storage_info.
func (c *Client) SplitStorageInfo(ctx context.Context) (*types.RpcSplitStorageInfoResponse, error) {
	var res types.RpcSplitStorageInfoResponse
	if err := c.Call(ctx, types.MethodExperimentalSplitStorageInfo, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CongestionLevel calls EXPERIMENTAL_congestion_level.
func (c *Client) CongestionLevel(ctx context.Context, req types.RpcCongestionLevelRequest) (*types.RpcCongestionLevelResponse, error) {
	var res types.RpcCongestionLevelResponse
	if err := c.Call(ctx, types.MethodExperimentalCongestionLevel, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
