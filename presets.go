package crackestimate

// OnlineThrottledConfig models an online login form with basic rate
// limiting: the attacker can only try passwords at whatever the API
// allows, represented here as bcrypt at a conservative cost against a
// single consumer GPU.
//
// Suitable for: estimating exposure for a web login endpoint that
// hashes stored credentials and rate-limits authentication attempts.
func OnlineThrottledConfig() Config {
	return Config{
		Algorithm:    "bcrypt_cost12",
		HardwareTier: "consumer",
	}
}

// OfflineStolenHashConfig models the far more dangerous scenario of a
// leaked password-hash database being cracked offline on a small GPU
// rig, with no rate limiting at all.
//
// Suitable for: post-breach impact assessment when hashes (not
// plaintext) have been exfiltrated.
func OfflineStolenHashConfig() Config {
	return Config{
		Algorithm:    "bcrypt_cost10",
		HardwareTier: "small_rig",
	}
}

// FastHashWorstCaseConfig models the worst realistic case: a system
// that stored passwords with a fast, unsalted general-purpose hash
// (MD5, SHA-1, NTLM) cracked by a well-funded attacker.
//
// Suitable for: flagging legacy systems that have not yet migrated to
// a slow password hash (bcrypt, scrypt, Argon2).
func FastHashWorstCaseConfig() Config {
	return Config{
		Algorithm:    "ntlm",
		HardwareTier: "well_funded",
	}
}

// NationStateConfig models the highest attacker tier this engine
// supports: a nation-state-scale GPU cluster against a modern,
// properly-configured KDF.
//
// Suitable for: stress-testing whether a password remains acceptable
// even under an extreme threat model.
func NationStateConfig() Config {
	return Config{
		Algorithm:    "argon2id_64m_t3",
		HardwareTier: "nation_state",
	}
}

// WiFiHandshakeConfig models cracking a captured WPA/WPA2 handshake —
// the PSK is hashed with PBKDF2 internally, but this engine treats the
// WPA/WPA2 rate as its own entry since real-world cracking rigs quote
// it directly.
//
// Suitable for: estimating the strength of a Wi-Fi pre-shared key.
func WiFiHandshakeConfig() Config {
	return Config{
		Algorithm:    "wpa_wpa2",
		HardwareTier: "dedicated",
	}
}
