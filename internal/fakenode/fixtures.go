package fakenode

import (
	"fmt"

	"github.com/gorilla/rpc/v2/json2"
)

// StatusResult is a status result as returned by a testnet node.
const StatusResult = `{
  "chain_id": "testnet",
  "genesis_hash": "FWJ9kR6KFWoyMoNjpLXXGHeuiy7tEY6GmoFeCA5yuc6b",
  "latest_protocol_version": 73,
  "node_public_key": "ed25519:DC7DbfZq4dkPqUKaKpWNimgtRBxnD8rRQTBUH3UD1RqK",
  "protocol_version": 73,
  "rpc_addr": "0.0.0.0:3030",
  "sync_info": {
    "earliest_block_hash": "4E5ngqNRoy5uDYmYJpeVGmUUSM1tVzSDWvzZ6MzJx7hS",
    "earliest_block_height": 176810633,
    "earliest_block_time": "2024-10-14T03:20:46.163826574Z",
    "epoch_id": "GgGq5k1YEBR9LqmAE4LZHyWZaGVJAB7N6c2z1QZqYnnd",
    "epoch_start_height": 177071333,
    "latest_block_hash": "C1UHmyZQBR5fD2hgxHZ9iTxkF5Vv5GBXqFr5npPD7USV",
    "latest_block_height": 177104418,
    "latest_block_time": "2024-10-17T13:45:04.612574306Z",
    "latest_state_root": "6BwSCFcTeGTTmcGKdBr1CEV8XyCs7UtzbQ8M2AZqrHXj",
    "syncing": false
  },
  "uptime_sec": 8271203,
  "validator_account_id": null,
  "validators": [
    {"account_id": "node0"},
    {"account_id": "node1"}
  ],
  "version": {
    "build": "2.3.0",
    "commit": "9f2d2e9b1cf0d51e68fd8a9c1d3d3f1c8c5f7a11",
    "rustc_version": "1.81.0",
    "version": "2.3.0"
  }
}`

// UnknownAccount is the error object a node returns when a query names an
// account that does not exist.
func UnknownAccount(account string, blockHeight uint64, blockHash string) string {
	return fmt.Sprintf(`{
  "name": "HANDLER_ERROR",
  "cause": {
    "name": "UNKNOWN_ACCOUNT",
    "info": {"requested_account_id": %q, "block_height": %d, "block_hash": %q}
  },
  "code": %d,
  "message": "Server error",
  "data": "account %s does not exist while viewing"
}`, account, blockHeight, blockHash, json2.E_SERVER, account)
}

// MethodNotFound is the error object for a method the node does not serve.
func MethodNotFound(method string) string {
	return fmt.Sprintf(`{"name":"REQUEST_VALIDATION_ERROR","cause":{"name":"METHOD_NOT_FOUND","info":{"method_name":%q}},"code":%d,"message":"Method not found","data":%q}`,
		method, json2.E_NO_METHOD, method)
}

// InternalError is the error object for a node-side failure.
func InternalError(msg string) string {
	return fmt.Sprintf(`{"name":"INTERNAL_ERROR","cause":{"name":"INTERNAL_ERROR","info":{"error_message":%q}},"code":%d,"message":"Server error","data":%q}`,
		msg, json2.E_INTERNAL, msg)
}
