package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/checkpointd/domain/dagconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Mainnet bool `long:"mainnet" description:"Use the main network (default)"`
	Testnet bool `long:"testnet" description:"Use the test network"`

	ActiveNetParams *dagconfig.Params
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	//NetParams holds the selected network parameters. Default value is main-net.
	networkFlags.ActiveNetParams = &dagconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Mainnet {
		numNets++
	}
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &dagconfig.TestnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (mainnet, testnet) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

// Network returns the selected network. It is only meaningful after
// ResolveNetwork succeeded.
func (networkFlags *NetworkFlags) Network() dagconfig.Network {
	if networkFlags.ActiveNetParams == nil {
		return dagconfig.Mainnet
	}
	return networkFlags.ActiveNetParams.Net
}
