package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/soneium-tools/token-faucet/internal/networks"
)

type (
	// Config is the full process configuration, parsed once at startup from
	// the environment. The operator key may be absent: the service then runs
	// read-only and every claim submission fails with a credential error.
	Config struct {
		ListenAddr string `env:"FAUCET_LISTEN_ADDR" env-default:":8080"`
		LogLevel   string `env:"FAUCET_LOG_LEVEL" env-default:"info"`

		// OperatorKey is the hex-encoded private key used to sign claimFor
		// transactions. Never logged.
		OperatorKey string `env:"OPERATOR_PRIVATE_KEY"`

		// CallTimeout bounds every single contract read or write.
		CallTimeout time.Duration `env:"FAUCET_CALL_TIMEOUT" env-default:"15s"`
		// ConfirmTimeout is the wall-clock ceiling on waiting for a claim
		// transaction receipt; past it the claim is reported unconfirmed.
		ConfirmTimeout time.Duration `env:"FAUCET_CONFIRM_TIMEOUT" env-default:"60s"`
		// ConfirmPollInterval is how often the receipt is polled for.
		ConfirmPollInterval time.Duration `env:"FAUCET_CONFIRM_POLL_INTERVAL" env-default:"2s"`

		Minato NetworkOverrides `env-prefix:"MINATO_"`
		Kairos NetworkOverrides `env-prefix:"KAIROS_"`
	}

	// NetworkOverrides are the per-network values the environment may set on
	// top of the compiled-in defaults.
	NetworkOverrides struct {
		RpcUrl        string `env:"RPC_URL"`
		FaucetAddress string `env:"FAUCET_ADDRESS"`
		TokenAddress  string `env:"TOKEN_ADDRESS"`
	}
)

// Load parses the environment into a Config and validates it. It performs no
// I/O beyond reading process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for id, ov := range c.Overrides() {
		if ov.FaucetAddress != "" && !common.IsHexAddress(ov.FaucetAddress) {
			return fmt.Errorf("config: invalid faucet address for network %s", id)
		}
		if ov.TokenAddress != "" && !common.IsHexAddress(ov.TokenAddress) {
			return fmt.Errorf("config: invalid token address for network %s", id)
		}
	}
	if c.HasOperatorKey() {
		if _, err := ParseOperatorKey(c.OperatorKey); err != nil {
			return err
		}
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("config: call timeout must be positive")
	}
	if c.ConfirmTimeout <= 0 || c.ConfirmPollInterval <= 0 {
		return fmt.Errorf("config: confirmation timeout and poll interval must be positive")
	}
	return nil
}

// Overrides maps the flat env sections onto registry override keys.
func (c *Config) Overrides() map[string]networks.Override {
	return map[string]networks.Override{
		"minato": {
			RpcUrl:        c.Minato.RpcUrl,
			FaucetAddress: c.Minato.FaucetAddress,
			TokenAddress:  c.Minato.TokenAddress,
		},
		"kairos": {
			RpcUrl:        c.Kairos.RpcUrl,
			FaucetAddress: c.Kairos.FaucetAddress,
			TokenAddress:  c.Kairos.TokenAddress,
		},
	}
}

// HasOperatorKey reports whether a signing credential was configured.
func (c *Config) HasOperatorKey() bool {
	return strings.TrimSpace(c.OperatorKey) != ""
}
