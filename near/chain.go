package near

import "fmt"

// ChainID selects the network an indexer instance runs against.
type ChainID string

const (
	Mainnet ChainID = "mainnet"
	Testnet ChainID = "testnet"
)

func ParseChainID(str string) (ChainID, error) {
	switch ChainID(str) {
	case Mainnet:
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	}
	return "", fmt.Errorf("unknown chain id '%s'", str)
}

func (c ChainID) String() string {
	return string(c)
}

// RPCURL returns the public JSON-RPC endpoint used when RPC_URL is not set.
func (c ChainID) RPCURL() string {
	if c == Testnet {
		return "https://rpc.testnet.near.org"
	}
	return "https://rpc.mainnet.near.org"
}

// LakeBucket returns the requester-pays bucket the chain publishes blocks to.
func (c ChainID) LakeBucket() string {
	if c == Testnet {
		return "near-lake-data-testnet"
	}
	return "near-lake-data-mainnet"
}
