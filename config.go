package crackestimate

import (
	"fmt"

	"github.com/passlab/crackestimate/internal/hardware"
	"github.com/passlab/crackestimate/internal/store"
)

// Config holds configuration options for password crack-time
// estimation.
//
// Use [DefaultConfig] to obtain a Config with recommended defaults,
// then override individual fields:
//
//	cfg := crackestimate.DefaultConfig()
//	cfg.Algorithm = "sha256"
//	cfg.HardwareTier = "nation_state"
//	result, err := crackestimate.EstimateWithConfig("hunter2", cfg)
type Config struct {
	// Algorithm is the hash/KDF the attacker is assumed to be cracking
	// against (default: "bcrypt_cost12"). See [hardware.AlgorithmNames]
	// for the fixed set, plus any "bcrypt_costN" for arbitrary N.
	Algorithm string

	// HardwareTier is the attacker's assumed hardware budget (default:
	// "consumer"). See [hardware.TierNames] for the supported set.
	HardwareTier string

	// Store supplies the wordlists, keyboard graphs, l33t table, and
	// mask library used during analysis. Nil uses [store.Default], the
	// process-wide data store (embedded data, or the directory named by
	// [store.DataDirEnvVar] when that is set) — override only to use a
	// different data directory within one process or to isolate tests.
	Store *store.Store
}

// DefaultConfig returns the recommended configuration: bcrypt at cost
// 12 against a single consumer GPU, the process-wide default data
// store.
func DefaultConfig() Config {
	return Config{
		Algorithm:    "bcrypt_cost12",
		HardwareTier: "consumer",
	}
}

// Validate checks the configuration for invalid values and returns an
// error describing the first problem found.
func (c Config) Validate() error {
	if _, err := hardware.ResolveHashRate(c.Algorithm); err != nil {
		return fmt.Errorf("crackestimate: %w", err)
	}
	if _, err := hardware.GetTier(c.HardwareTier); err != nil {
		return fmt.Errorf("crackestimate: %w", err)
	}
	return nil
}

func (c Config) store() *store.Store {
	if c.Store != nil {
		return c.Store
	}
	return store.Default()
}
