package crackestimate

import "testing"

// TestAllPresetsValid verifies every preset returns a Validate-able
// configuration.
func TestAllPresetsValid(t *testing.T) {
	presets := map[string]Config{
		"OnlineThrottled":   OnlineThrottledConfig(),
		"OfflineStolenHash": OfflineStolenHashConfig(),
		"FastHashWorstCase": FastHashWorstCaseConfig(),
		"NationState":       NationStateConfig(),
		"WiFiHandshake":     WiFiHandshakeConfig(),
	}

	for name, cfg := range presets {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s preset returned invalid config: %v", name, err)
			}
		})
	}
}

// TestPresetAttackerStrengthOrder verifies the same password cracks
// faster as the preset's attacker model grows stronger: an online,
// rate-limited bcrypt login is the slowest to crack; a fast, unsalted
// hash against a well-funded attacker is the fastest, faster even than
// a nation-state cluster against a slow KDF.
func TestPresetAttackerStrengthOrder(t *testing.T) {
	password := "correct horse battery staple 42"

	online, err := EstimateWithConfig(password, OnlineThrottledConfig())
	if err != nil {
		t.Fatalf("OnlineThrottledConfig estimate error = %v", err)
	}
	offline, err := EstimateWithConfig(password, OfflineStolenHashConfig())
	if err != nil {
		t.Fatalf("OfflineStolenHashConfig estimate error = %v", err)
	}
	worstCase, err := EstimateWithConfig(password, FastHashWorstCaseConfig())
	if err != nil {
		t.Fatalf("FastHashWorstCaseConfig estimate error = %v", err)
	}
	nationState, err := EstimateWithConfig(password, NationStateConfig())
	if err != nil {
		t.Fatalf("NationStateConfig estimate error = %v", err)
	}

	if online.CrackTimeSeconds < offline.CrackTimeSeconds {
		t.Errorf("online (%v) should be slower to crack than offline (%v)", online.CrackTimeSeconds, offline.CrackTimeSeconds)
	}
	if offline.CrackTimeSeconds < worstCase.CrackTimeSeconds {
		t.Errorf("offline (%v) should be slower to crack than the fast-hash worst case (%v)", offline.CrackTimeSeconds, worstCase.CrackTimeSeconds)
	}
	if nationState.CrackTimeSeconds < worstCase.CrackTimeSeconds {
		t.Errorf("nation_state (%v) should be slower to crack than the fast-hash worst case (%v)", nationState.CrackTimeSeconds, worstCase.CrackTimeSeconds)
	}
}

// TestWiFiHandshakeConfig verifies the Wi-Fi preset resolves against
// the wpa_wpa2 algorithm entry.
func TestWiFiHandshakeConfig(t *testing.T) {
	cfg := WiFiHandshakeConfig()
	if cfg.Algorithm != "wpa_wpa2" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "wpa_wpa2")
	}
	if _, err := EstimateWithConfig("mypassphrase123", cfg); err != nil {
		t.Errorf("EstimateWithConfig with WiFiHandshakeConfig() error = %v", err)
	}
}
