package hardware

import (
	"math/big"
	"testing"
)

func TestResolveHashRateKnown(t *testing.T) {
	rate, err := ResolveHashRate("sha256")
	if err != nil {
		t.Fatalf("ResolveHashRate() error = %v", err)
	}
	if rate != 21_975_500_000 {
		t.Errorf("rate = %v, want 21975500000", rate)
	}
}

func TestResolveHashRateBcryptArbitraryCost(t *testing.T) {
	rate, err := ResolveHashRate("bcrypt_cost15")
	if err != nil {
		t.Fatalf("ResolveHashRate() error = %v", err)
	}
	want := hashRatesPerGPU["bcrypt_cost5"] / 1024 // 2^(15-5)
	if rate != want {
		t.Errorf("rate = %v, want %v", rate, want)
	}
}

func TestResolveHashRateUnknown(t *testing.T) {
	if _, err := ResolveHashRate("made_up_algo"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestGetTierUnknown(t *testing.T) {
	if _, err := GetTier("supercomputer"); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestCrackTimeSeconds(t *testing.T) {
	seconds, err := CrackTimeSeconds(big.NewInt(1437), "bcrypt_cost12", "consumer")
	if err != nil {
		t.Fatalf("CrackTimeSeconds() error = %v", err)
	}
	if seconds != 1 {
		t.Errorf("seconds = %v, want 1", seconds)
	}
}
