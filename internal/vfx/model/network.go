// Package model defines the ledger entities mirrored from a VFX chain node.
package model

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Valid reports whether the network is one of the supported deployments.
func (n Network) Valid() bool {
	return n == Mainnet || n == Testnet
}
