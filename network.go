package go_openrpc_near

import (
	"errors"
	"fmt"
)

// Network names a public NEAR deployment with a well-known RPC endpoint.
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkBetanet  Network = "betanet"
	NetworkLocalnet Network = "localnet"
)

// DefaultNetwork is used by NewForNetwork when given the zero Network.
const DefaultNetwork = NetworkMainnet

var ErrUnknownNetwork = errors.New("unknown network")

var networkEndpoints = map[Network]string{
	NetworkMainnet:  "https://rpc.mainnet.near.org",
	NetworkTestnet:  "https://rpc.testnet.near.org",
	NetworkBetanet:  "https://rpc.betanet.near.org",
	NetworkLocalnet: "http://localhost:3030",
}

// Endpoint returns the default RPC URL of the network.
func (n Network) Endpoint() (string, error) {
	if n == "" {
		n = DefaultNetwork
	}
	u, ok := networkEndpoints[n]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, string(n))
	}
	return u, nil
}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork accepts the lowercase network names.
func ParseNetwork(s string) (Network, error) {
	n := Network(s)
	if _, ok := networkEndpoints[n]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
	return n, nil
}

// NewForNetwork returns a client for the default endpoint of n.
func NewForNetwork(n Network, opts ...Option) (*Client, error) {
	endpoint, err := n.Endpoint()
	if err != nil {
		return nil, err
	}
	return New(endpoint, opts...)
}

func mustNetwork(n Network, opts []Option) *Client {
	c, err := NewForNetwork(n, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Mainnet returns a client for https://rpc.mainnet.near.org.
func Mainnet(opts ...Option) *Client { return mustNetwork(NetworkMainnet, opts) }

// Testnet returns a client for https://rpc.testnet.near.org.
func Testnet(opts ...Option) *Client { return mustNetwork(NetworkTestnet, opts) }

// Betanet returns a client for https://rpc.betanet.near.org.
func Betanet(opts ...Option) *Client { return mustNetwork(NetworkBetanet, opts) }

// Localnet returns a client for a node listening on localhost:3030.
func Localnet(opts ...Option) *Client { return mustNetwork(NetworkLocalnet, opts) }
