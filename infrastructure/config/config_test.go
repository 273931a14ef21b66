package config

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/checkpointd/domain/dagconfig"
)

type testConfig struct {
	NetworkFlags
	CheckpointFlags
}

func parseTestConfig(t *testing.T, args ...string) (*testConfig, *flags.Parser) {
	cfg := &testConfig{}
	parser := flags.NewParser(cfg, flags.None)
	_, err := parser.ParseArgs(args)
	if err != nil {
		t.Fatalf("ParseArgs(%v) unexpectedly failed: %s", args, err)
	}
	return cfg, parser
}

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedNetwork dagconfig.Network
		expectedName    string
	}{
		{name: "default", args: nil, expectedNetwork: dagconfig.Mainnet, expectedName: "mainnet"},
		{name: "mainnet", args: []string{"--mainnet"}, expectedNetwork: dagconfig.Mainnet, expectedName: "mainnet"},
		{name: "testnet", args: []string{"--testnet"}, expectedNetwork: dagconfig.Testnet, expectedName: "testnet"},
	}

	for _, test := range tests {
		cfg, parser := parseTestConfig(t, test.args...)
		err := cfg.ResolveNetwork(parser)
		if err != nil {
			t.Errorf("TestResolveNetwork: %s: unexpected error: %s", test.name, err)
			continue
		}
		if cfg.Network() != test.expectedNetwork {
			t.Errorf("TestResolveNetwork: %s: unexpected network. Want: %s, got: %s",
				test.name, test.expectedNetwork, cfg.Network())
		}
		if cfg.NetParams().Name != test.expectedName {
			t.Errorf("TestResolveNetwork: %s: unexpected params name. Want: %s, got: %s",
				test.name, test.expectedName, cfg.NetParams().Name)
		}
	}
}

func TestResolveNetworkMultiple(t *testing.T) {
	cfg, _ := parseTestConfig(t, "--mainnet", "--testnet")
	err := cfg.ResolveNetwork(nil)
	if err == nil {
		t.Fatalf("TestResolveNetworkMultiple: selecting two networks unexpectedly succeeded")
	}
}

func TestCheckpointsEnabled(t *testing.T) {
	cfg, _ := parseTestConfig(t)
	if !cfg.CheckpointsEnabled() {
		t.Errorf("TestCheckpointsEnabled: checkpoints are disabled by default")
	}

	cfg, _ = parseTestConfig(t, "--nocheckpoints")
	if cfg.CheckpointsEnabled() {
		t.Errorf("TestCheckpointsEnabled: --nocheckpoints did not disable checkpoints")
	}
}
