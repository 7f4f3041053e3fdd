// Package hardware converts a guess count into a crack time by
// combining a hash algorithm's per-GPU guess rate with a hardware
// tier's multiplier. Values are carried as embedded Go constants
// rather than loaded through internal/store: unlike wordlists or
// keyboard graphs, this table is small, fixed, and consulted on every
// single estimation, so there is no benefit to treating it as
// loadable/overridable data. internal/store separately packages a
// hash_rates.json copy purely so Validate can confirm the data file
// ships correctly — this package is the one actually consulted at
// runtime (see DESIGN.md).
package hardware

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// hashRatesPerGPU is guesses-per-second for a single high-end consumer
// GPU, per algorithm.
var hashRatesPerGPU = map[string]float64{
	"md5":             164_100_000_000,
	"sha1":            50_638_700_000,
	"sha256":          21_975_500_000,
	"sha512":          7_483_400_000,
	"ntlm":            288_500_000_000,
	"bcrypt_cost5":    184_000,
	"bcrypt_cost10":   5_750,
	"bcrypt_cost12":   1_437,
	"scrypt_default":  7_126,
	"argon2id_64m_t3": 600,
	"pbkdf2_sha256":   8_865_700,
	"wpa_wpa2":        2_533_300,
}

// bcryptCostPrefix identifies an arbitrary-cost bcrypt algorithm name,
// e.g. "bcrypt_cost14", whose rate is derived rather than looked up.
const bcryptCostPrefix = "bcrypt_cost"

// Tier describes one attacker hardware profile.
type Tier struct {
	Description string
	Multiplier  float64
}

// tiers is the fixed hardware-tier table, escalating from a single
// budget GPU to a nation-state-scale cluster.
var tiers = map[string]Tier{
	"budget":       {"GTX 1080 Ti", 0.19},
	"consumer":     {"RTX 4090", 1.0},
	"enthusiast":   {"RTX 5090", 1.34},
	"small_rig":    {"4x RTX 4090", 3.6},
	"large_rig":    {"8x RTX 4090", 7.0},
	"dedicated":    {"14x RTX 4090", 12.2},
	"well_funded":  {"~100 GPUs", 85.0},
	"nation_state": {"10K+ GPUs", 8500.0},
}

// ResolveHashRate returns the base (single-GPU) guesses-per-second for
// algorithm. bcrypt at an arbitrary cost N, named "bcrypt_costN", is
// derived from the cost-5 rate by halving once per additional cost
// step, since bcrypt's cost parameter doubles the work factor.
func ResolveHashRate(algorithm string) (float64, error) {
	if rate, ok := hashRatesPerGPU[algorithm]; ok {
		return rate, nil
	}

	if strings.HasPrefix(algorithm, bcryptCostPrefix) {
		costStr := strings.TrimPrefix(algorithm, bcryptCostPrefix)
		cost, err := strconv.Atoi(costStr)
		if err != nil {
			return 0, unsupportedAlgorithmError(algorithm)
		}
		base := hashRatesPerGPU["bcrypt_cost5"]
		return base / math.Pow(2, float64(cost-5)), nil
	}

	return 0, unsupportedAlgorithmError(algorithm)
}

func unsupportedAlgorithmError(algorithm string) error {
	names := make([]string, 0, len(hashRatesPerGPU))
	for name := range hashRatesPerGPU {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf(
		"hardware: unknown algorithm %q. Supported: %s. For bcrypt, use \"bcrypt_costN\" with any cost N",
		algorithm, strings.Join(names, ", "),
	)
}

// GetTier looks up a hardware tier by name.
func GetTier(name string) (Tier, error) {
	t, ok := tiers[name]
	if !ok {
		names := make([]string, 0, len(tiers))
		for n := range tiers {
			names = append(names, n)
		}
		sort.Strings(names)
		return Tier{}, fmt.Errorf("hardware: unknown hardware tier %q. Supported: %s", name, strings.Join(names, ", "))
	}
	return t, nil
}

// EffectiveRate is the base hash rate for algorithm scaled by
// hardwareTier's multiplier.
func EffectiveRate(algorithm, hardwareTier string) (float64, error) {
	base, err := ResolveHashRate(algorithm)
	if err != nil {
		return 0, err
	}
	tier, err := GetTier(hardwareTier)
	if err != nil {
		return 0, err
	}
	return base * tier.Multiplier, nil
}

// CrackTimeSeconds converts guesses into an expected crack time in
// seconds at the given algorithm/hardware combination. An effective
// rate of zero (a degenerate tier multiplier) yields +Inf rather than
// dividing by zero.
func CrackTimeSeconds(guesses *big.Int, algorithm, hardwareTier string) (float64, error) {
	rate, err := EffectiveRate(algorithm, hardwareTier)
	if err != nil {
		return 0, err
	}
	if rate == 0 {
		return math.Inf(1), nil
	}
	guessesF, _ := new(big.Float).SetInt(guesses).Float64()
	return guessesF / rate, nil
}

// TierNames returns every supported hardware tier name, sorted.
func TierNames() []string {
	names := make([]string, 0, len(tiers))
	for n := range tiers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AlgorithmNames returns every supported hash algorithm name (not
// counting the open-ended bcrypt_costN family), sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(hashRatesPerGPU))
	for n := range hashRatesPerGPU {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
