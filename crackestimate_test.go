package crackestimate

import (
	"math/big"
	"testing"
)

func TestEstimateEmptyPassword(t *testing.T) {
	res, err := Estimate("")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if res.GuessNumber.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("GuessNumber = %v, want 0", res.GuessNumber)
	}
	if res.Rating != 0 || res.WinningAttack != winningEmptyPassword {
		t.Errorf("Rating/WinningAttack = %d/%s, want 0/%s", res.Rating, res.WinningAttack, winningEmptyPassword)
	}
}

func TestEstimateCommonPassword(t *testing.T) {
	res, err := Estimate("password")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if res.GuessNumber.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("GuessNumber = %v, want 1", res.GuessNumber)
	}
	if res.Rating != 0 {
		t.Errorf("Rating = %d, want 0 (CRITICAL)", res.Rating)
	}
}

func TestEstimateRepeatedCharacters(t *testing.T) {
	res, err := Estimate("aaaaaa")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if res.GuessNumber.Cmp(big.NewInt(156)) > 0 {
		t.Errorf("GuessNumber = %v, want <= 156", res.GuessNumber)
	}
}

func TestEstimateWithConfigInvalidAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = "not_a_real_algorithm"
	if _, err := EstimateWithConfig("anything", cfg); err == nil {
		t.Error("expected error for invalid algorithm")
	}
}

func TestEstimateWithConfigInvalidTier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HardwareTier = "not_a_real_tier"
	if _, err := EstimateWithConfig("anything", cfg); err == nil {
		t.Error("expected error for invalid hardware tier")
	}
}

func TestEstimateDecompositionCoversWholePassword(t *testing.T) {
	res, err := Estimate("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	total := 0
	for _, seg := range res.Decomposition {
		total += len([]rune(seg.Token))
	}
	if total != len([]rune("correcthorsebatterystaple")) {
		t.Errorf("decomposition covers %d runes, want %d", total, len("correcthorsebatterystaple"))
	}
}

func TestEstimateStrongerPasswordRatesHigher(t *testing.T) {
	weak, err := Estimate("password")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	strong, err := Estimate("qG7$kM2!xR9@zL4#")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if strong.Rating < weak.Rating {
		t.Errorf("strong.Rating = %d, weak.Rating = %d; want strong >= weak", strong.Rating, weak.Rating)
	}
}
