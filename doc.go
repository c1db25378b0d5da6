/*
Package go_openrpc_near is a JSON-RPC client for NEAR Protocol nodes.

Requests and responses are the types generated from the node's OpenRPC
document in the types package. Import types alone to use the data model
without any networking code.

	client := go_openrpc_near.Testnet()
	status, err := client.Status(ctx)

Errors returned by calls are one of *TransportError, *ProtocolError,
*DecodeError or *RPCError, and can be told apart with errors.As.
*/
package go_openrpc_near
