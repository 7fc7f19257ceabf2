package config

import (
	"fmt"
)

// LedgerConfig seeds the staking core on first run. The interest rate is
// only a seed: once the ledger has persisted state, the stored rate wins.
type LedgerConfig struct {
	// OwnerAccount is the administrator: the only caller allowed to change
	// the rate, fund the reward pool, pause deposits, or emergency-withdraw.
	OwnerAccount string `mapstructure:"owner-account"`
	// InitialInterestRateBps is the annualized rate in basis points applied
	// until the owner changes it (10000 = 100%).
	InitialInterestRateBps uint64 `mapstructure:"initial-interest-rate-bps"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.OwnerAccount == "" {
		return fmt.Errorf("ledger owner account is required")
	}

	return nil
}
