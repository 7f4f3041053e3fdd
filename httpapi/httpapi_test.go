package httpapi

import (
	"testing"

	"github.com/passlab/crackestimate"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(crackestimate.DefaultConfig())
}

func TestServiceEstimate(t *testing.T) {
	svc := testService(t)
	resp, err := svc.Estimate(EstimateRequest{Password: "password"})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if resp.GuessNumber != "1" {
		t.Errorf("GuessNumber = %q, want %q", resp.GuessNumber, "1")
	}
	if resp.RequestID == "" {
		t.Error("RequestID is empty")
	}
}

func TestServiceEstimateInvalidAlgorithm(t *testing.T) {
	svc := testService(t)
	if _, err := svc.Estimate(EstimateRequest{Password: "x", Algorithm: "not_real"}); err == nil {
		t.Error("expected error for invalid algorithm")
	}
}

func TestServiceTargetedMatches(t *testing.T) {
	svc := testService(t)
	req := TargetedRequest{
		EstimateRequest: EstimateRequest{Password: "johnsmith2020"},
		Context:         []string{"John Smith"},
	}
	resp, err := svc.Targeted(req)
	if err != nil {
		t.Fatalf("Targeted() error = %v", err)
	}
	if len(resp.WinningAttack) < len("targeted_") || resp.WinningAttack[:len("targeted_")] != "targeted_" {
		t.Errorf("WinningAttack = %q, want targeted_ prefix", resp.WinningAttack)
	}
	if _, ok := resp.Strategies["targeted_context"]; !ok {
		t.Error("missing targeted_context strategy")
	}
}

func TestServiceTargetedNoMatch(t *testing.T) {
	svc := testService(t)
	req := TargetedRequest{
		EstimateRequest: EstimateRequest{Password: "xk9$mQ2!vR7"},
		Context:         []string{"John Smith"},
	}
	resp, err := svc.Targeted(req)
	if err != nil {
		t.Fatalf("Targeted() error = %v", err)
	}
	if _, ok := resp.Strategies["targeted_context"]; ok {
		t.Error("unexpected targeted_context strategy for non-matching context")
	}
}

func TestServiceBatch(t *testing.T) {
	svc := testService(t)
	resp, err := svc.Batch(BatchRequest{Passwords: []string{"password", "qG7$kM2!xR9@zL4#"}})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if resp.TotalPasswords != 2 {
		t.Errorf("TotalPasswords = %d, want 2", resp.TotalPasswords)
	}
	if resp.Summary.RatingDistribution[0] != 1 {
		t.Errorf("RatingDistribution[0] = %d, want 1", resp.Summary.RatingDistribution[0])
	}
}

func TestServiceCompareAlgorithms(t *testing.T) {
	svc := testService(t)
	results, err := svc.Compare(AxisAlgorithms, CompareRequest{
		Password:   "Tr0ub4dor&3",
		Algorithms: []string{"sha256", "bcrypt_cost12"},
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].HashAlgorithm == results[1].HashAlgorithm {
		t.Error("expected different algorithms across results")
	}
}

func TestServiceMetadata(t *testing.T) {
	svc := testService(t)
	meta := svc.Metadata()
	if len(meta.Algorithms) == 0 || len(meta.HardwareTiers) == 0 {
		t.Error("Metadata() returned empty lists")
	}
}
