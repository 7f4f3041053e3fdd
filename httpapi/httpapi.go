// Package httpapi exposes crackestimate over HTTP: a single-password
// estimate, a batch audit with summary statistics, a parameter-sweep
// comparison, an algorithm/tier metadata listing, and a targeted
// estimate that factors in personal context strings.
//
// This package only composes calls into the crackestimate core; it
// performs no estimation logic of its own.
//
// A default, framework-free router is built on gorilla/mux (see
// [NewMuxRouter]). Optional adapters for Gin, Fiber, and Echo live in
// build-tagged files: one constructor function per framework, behind
// a build tag, each serving full request/response bodies around the
// shared Service.
package httpapi

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/passlab/crackestimate"
	"github.com/passlab/crackestimate/internal/hardware"
	"github.com/passlab/crackestimate/internal/safemem"
	"github.com/passlab/crackestimate/internal/targeted"
)

// EstimateRequest is the body of POST /estimate and POST /targeted
// (TargetedRequest embeds it).
type EstimateRequest struct {
	Password     string `json:"password"`
	Algorithm    string `json:"algorithm,omitempty"`
	HardwareTier string `json:"hardware_tier,omitempty"`
}

// TargetedRequest is the body of POST /targeted.
type TargetedRequest struct {
	EstimateRequest
	Context []string `json:"context,omitempty"`
}

// BatchRequest is the body of POST /batch.
type BatchRequest struct {
	Passwords    []string `json:"passwords"`
	Algorithm    string   `json:"algorithm,omitempty"`
	HardwareTier string   `json:"hardware_tier,omitempty"`
}

// CompareRequest holds the parameters of GET /compare, which the router
// fills from the query string. Exactly one of
// Passwords, Algorithms, HardwareTiers should have 2+ entries — that
// field names the swept axis; the other two fields act as the fixed
// values for every comparison point.
type CompareRequest struct {
	Passwords     []string `json:"passwords,omitempty"`
	Algorithms    []string `json:"algorithms,omitempty"`
	HardwareTiers []string `json:"hardware_tiers,omitempty"`
	Password      string   `json:"password,omitempty"`
	Algorithm     string   `json:"algorithm,omitempty"`
	HardwareTier  string   `json:"hardware_tier,omitempty"`
}

// StrategyInfo mirrors one entry of crackestimate.Result.Strategies.
type StrategyInfo struct {
	GuessNumber string         `json:"guess_number"`
	AttackName  string         `json:"attack_name"`
	Details     map[string]any `json:"details,omitempty"`
}

// EstimateResponse is the body returned by /estimate and /targeted, and
// each element of /compare. Rows of /batch use BatchPasswordResult.
type EstimateResponse struct {
	RequestID        string                  `json:"request_id"`
	Password         string                  `json:"password"`
	HashAlgorithm    string                  `json:"hash_algorithm"`
	HardwareTier     string                  `json:"hardware_tier"`
	GuessNumber      string                  `json:"guess_number"`
	CrackTimeSeconds float64                 `json:"crack_time_seconds"`
	CrackTimeDisplay string                  `json:"crack_time_display"`
	Rating           int                     `json:"rating"`
	RatingLabel      string                  `json:"rating_label"`
	WinningAttack    string                  `json:"winning_attack"`
	Strategies       map[string]StrategyInfo `json:"strategies"`
}

// BatchSummary aggregates a batch run: median crack time (of the
// sorted crack times, upper-middle element for even counts), and
// rating/winning-attack histograms.
type BatchSummary struct {
	MedianCrackTimeSeconds    float64        `json:"median_crack_time_seconds"`
	RatingDistribution        map[int]int    `json:"rating_distribution"`
	WinningAttackDistribution map[string]int `json:"winning_attack_distribution"`
}

// BatchPasswordResult is one password's row within a batch response.
type BatchPasswordResult struct {
	Password         string  `json:"password"`
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time_display"`
	Rating           int     `json:"rating"`
	RatingLabel      string  `json:"rating_label"`
	WinningAttack    string  `json:"winning_attack"`
	GuessNumber      string  `json:"guess_number"`
}

// BatchResponse is the body of POST /batch.
type BatchResponse struct {
	RequestID      string                `json:"request_id"`
	TotalPasswords int                   `json:"total_passwords"`
	Summary        BatchSummary          `json:"summary"`
	Passwords      []BatchPasswordResult `json:"passwords"`
}

// MetadataResponse is the body of GET /metadata.
type MetadataResponse struct {
	Algorithms    []string          `json:"algorithms"`
	HardwareTiers []string          `json:"hardware_tiers"`
	Tiers         map[string]string `json:"tier_descriptions"`
}

// Service wires a crackestimate.Config into the HTTP operations. The
// zero value uses crackestimate.DefaultConfig().
type Service struct {
	Config crackestimate.Config

	// MinResponseTimeMs, if positive, pads every Estimate/Targeted
	// response so it takes at least this long, so that response
	// latency does not leak how cheap or expensive the password was
	// to analyze (e.g. a one-character password short-circuiting
	// versus a long one running the full decomposition).
	MinResponseTimeMs int
}

// NewService returns a Service using cfg for every estimation.
func NewService(cfg crackestimate.Config) *Service {
	return &Service{Config: cfg}
}

func (s *Service) config() crackestimate.Config {
	if s == nil || s.Config == (crackestimate.Config{}) {
		return crackestimate.DefaultConfig()
	}
	return s.Config
}

// resolved fills in req's algorithm/hardware tier from the service's
// default configuration wherever the request left them blank.
func (s *Service) resolved(algorithm, hardwareTier string) crackestimate.Config {
	cfg := s.config()
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	if hardwareTier != "" {
		cfg.HardwareTier = hardwareTier
	}
	return cfg
}

// Estimate implements POST /estimate.
func (s *Service) Estimate(req EstimateRequest) (EstimateResponse, error) {
	start := time.Now()
	cfg := s.resolved(req.Algorithm, req.HardwareTier)
	result, err := crackestimate.EstimateWithConfig(req.Password, cfg)
	if s != nil {
		safemem.SleepRemaining(start, s.MinResponseTimeMs)
	}
	if err != nil {
		return EstimateResponse{}, err
	}
	return toResponse(result), nil
}

// Targeted implements POST /targeted: an estimate with the
// "targeted_" winning-attack prefix and a synthetic targeted_context
// strategy applied whenever any context string matches the password.
func (s *Service) Targeted(req TargetedRequest) (EstimateResponse, error) {
	resp, err := s.Estimate(req.EstimateRequest)
	if err != nil {
		return EstimateResponse{}, err
	}

	matches := targeted.Find(req.Password, req.Context)
	if len(matches) == 0 {
		return resp, nil
	}

	matchedContext := make([]string, len(matches))
	for i, m := range matches {
		matchedContext[i] = m.Context
	}

	resp.WinningAttack = "targeted_" + resp.WinningAttack
	if resp.Strategies == nil {
		resp.Strategies = make(map[string]StrategyInfo)
	}
	resp.Strategies["targeted_context"] = StrategyInfo{
		GuessNumber: resp.GuessNumber,
		AttackName:  "Targeted attack (personal context)",
		Details:     map[string]any{"matched_context": matchedContext},
	}
	return resp, nil
}

// Batch implements POST /batch.
func (s *Service) Batch(req BatchRequest) (BatchResponse, error) {
	results := make([]crackestimate.Result, 0, len(req.Passwords))
	cfg := s.resolved(req.Algorithm, req.HardwareTier)
	for _, pw := range req.Passwords {
		r, err := crackestimate.EstimateWithConfig(pw, cfg)
		if err != nil {
			return BatchResponse{}, err
		}
		results = append(results, r)
	}

	ratingDist := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}
	attackDist := make(map[string]int)
	crackTimes := make([]float64, len(results))
	for i, r := range results {
		ratingDist[r.Rating]++
		attackDist[r.WinningAttack]++
		crackTimes[i] = r.CrackTimeSeconds
	}
	sortFloats(crackTimes)

	var median float64
	if len(crackTimes) > 0 {
		median = crackTimes[len(crackTimes)/2]
	}

	rows := make([]BatchPasswordResult, len(results))
	for i, r := range results {
		rows[i] = BatchPasswordResult{
			Password:         r.Password,
			CrackTimeSeconds: sanitizeInf(r.CrackTimeSeconds),
			CrackTimeDisplay: r.CrackTimeDisplay,
			Rating:           r.Rating,
			RatingLabel:      r.RatingLabel,
			WinningAttack:    r.WinningAttack,
			GuessNumber:      r.GuessNumber.String(),
		}
	}

	return BatchResponse{
		RequestID:      uuid.NewString(),
		TotalPasswords: len(results),
		Summary: BatchSummary{
			MedianCrackTimeSeconds:    sanitizeInf(median),
			RatingDistribution:        ratingDist,
			WinningAttackDistribution: attackDist,
		},
		Passwords: rows,
	}, nil
}

// CompareAxis names which field of a CompareRequest is being swept.
type CompareAxis string

const (
	AxisPasswords     CompareAxis = "passwords"
	AxisAlgorithms    CompareAxis = "algorithms"
	AxisHardwareTiers CompareAxis = "hardware_tiers"
)

// Compare implements GET /compare: it sweeps exactly one axis
// (passwords, algorithms, or hardware tiers) while holding the other
// two fixed.
func (s *Service) Compare(axis CompareAxis, req CompareRequest) ([]EstimateResponse, error) {
	switch axis {
	case AxisPasswords:
		out := make([]EstimateResponse, len(req.Passwords))
		for i, pw := range req.Passwords {
			r, err := s.Estimate(EstimateRequest{Password: pw, Algorithm: req.Algorithm, HardwareTier: req.HardwareTier})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case AxisAlgorithms:
		out := make([]EstimateResponse, len(req.Algorithms))
		for i, algo := range req.Algorithms {
			r, err := s.Estimate(EstimateRequest{Password: req.Password, Algorithm: algo, HardwareTier: req.HardwareTier})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case AxisHardwareTiers:
		out := make([]EstimateResponse, len(req.HardwareTiers))
		for i, tier := range req.HardwareTiers {
			r, err := s.Estimate(EstimateRequest{Password: req.Password, Algorithm: req.Algorithm, HardwareTier: tier})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return nil, errUnknownAxis(axis)
	}
}

// Metadata implements GET /metadata.
func (s *Service) Metadata() MetadataResponse {
	names := hardware.TierNames()
	descriptions := make(map[string]string, len(names))
	for _, n := range names {
		if t, err := hardware.GetTier(n); err == nil {
			descriptions[n] = t.Description
		}
	}
	return MetadataResponse{
		Algorithms:    hardware.AlgorithmNames(),
		HardwareTiers: names,
		Tiers:         descriptions,
	}
}

func toResponse(r crackestimate.Result) EstimateResponse {
	strategies := make(map[string]StrategyInfo, len(r.Strategies))
	for name, sr := range r.Strategies {
		guess := ""
		if sr.GuessNumber != nil {
			guess = sr.GuessNumber.String()
		}
		strategies[name] = StrategyInfo{
			GuessNumber: guess,
			AttackName:  sr.AttackName,
			Details:     sr.Details,
		}
	}
	return EstimateResponse{
		RequestID:        uuid.NewString(),
		Password:         r.Password,
		HashAlgorithm:    r.HashAlgorithm,
		HardwareTier:     r.HardwareTier,
		GuessNumber:      r.GuessNumber.String(),
		CrackTimeSeconds: sanitizeInf(r.CrackTimeSeconds),
		CrackTimeDisplay: r.CrackTimeDisplay,
		Rating:           r.Rating,
		RatingLabel:      r.RatingLabel,
		WinningAttack:    r.WinningAttack,
		Strategies:       strategies,
	}
}

// sanitizeInf maps +Inf to the largest finite float64, since JSON has
// no Infinity literal.
func sanitizeInf(f float64) float64 {
	if math.IsInf(f, 1) {
		return math.MaxFloat64
	}
	return f
}

func sortFloats(fs []float64) {
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && fs[j-1] > fs[j]; j-- {
			fs[j-1], fs[j] = fs[j], fs[j-1]
		}
	}
}

type errUnknownAxis CompareAxis

func (e errUnknownAxis) Error() string {
	return "httpapi: unknown compare axis " + string(e)
}
