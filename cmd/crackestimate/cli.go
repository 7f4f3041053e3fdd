package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/passlab/crackestimate"
)

// Exit codes returned by [run].
const (
	exitOK         = 0 // success
	exitError      = 1 // runtime or estimation error
	exitUsageError = 2 // invalid arguments
)

// options holds the parsed CLI flags and arguments.
type options struct {
	subcommand string
	arg        string // password (estimate) or password-file path (batch)
	algorithm  string
	hardware   string
	json       bool
	verbose    bool
	noColor    bool
	help       bool
	showVer    bool
}

// parseArgs parses command-line arguments into options. The first
// argument names the subcommand ("estimate" or "batch"); the first
// non-flag argument after it is the password or file path. Use "--"
// to stop flag parsing (passwords may themselves start with a dash).
func parseArgs(args []string) (options, error) {
	opts := options{algorithm: "bcrypt_cost12", hardware: "consumer"}
	flagsDone := false

	for i, arg := range args {
		if arg == "--" && !flagsDone {
			flagsDone = true
			continue
		}

		if !flagsDone && strings.HasPrefix(arg, "-") {
			switch {
			case arg == "--json":
				opts.json = true
			case arg == "--verbose" || arg == "-v":
				opts.verbose = true
			case arg == "--no-color":
				opts.noColor = true
			case arg == "--help" || arg == "-h":
				opts.help = true
			case arg == "--version":
				opts.showVer = true
			case strings.HasPrefix(arg, "--hash="):
				opts.algorithm = strings.TrimPrefix(arg, "--hash=")
			case strings.HasPrefix(arg, "--hardware="):
				opts.hardware = strings.TrimPrefix(arg, "--hardware=")
			default:
				return opts, fmt.Errorf("unknown flag: %s\nRun 'crackestimate --help' for usage", arg)
			}
			continue
		}

		if opts.subcommand == "" && i == 0 {
			opts.subcommand = arg
			continue
		}
		if opts.arg != "" {
			return opts, fmt.Errorf("unexpected argument: %s", arg)
		}
		opts.arg = arg
	}

	return opts, nil
}

// run executes the CLI logic and returns the exit code.
func run(stdout, stderr io.Writer, args []string, envNoColor bool) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsageError
	}

	if opts.help || opts.subcommand == "" {
		printHelp(stdout)
		if opts.subcommand == "" && !opts.help {
			return exitUsageError
		}
		return exitOK
	}

	if opts.showVer {
		fmt.Fprintf(stdout, "crackestimate %s\n", version)
		return exitOK
	}

	cfg := crackestimate.DefaultConfig()
	cfg.Algorithm = opts.algorithm
	cfg.HardwareTier = opts.hardware

	switch opts.subcommand {
	case "estimate":
		return runEstimate(stdout, stderr, opts, cfg, envNoColor)
	case "batch":
		return runBatch(stdout, stderr, opts, cfg, envNoColor)
	default:
		fmt.Fprintf(stderr, "Error: unknown subcommand %q\n", opts.subcommand)
		printHelp(stderr)
		return exitUsageError
	}
}

func runEstimate(stdout, stderr io.Writer, opts options, cfg crackestimate.Config, envNoColor bool) int {
	if opts.arg == "" {
		fmt.Fprintln(stderr, "Error: password argument required")
		return exitUsageError
	}

	result, err := crackestimate.EstimateWithConfig(opts.arg, cfg)
	if err != nil {
		if opts.json {
			_ = json.NewEncoder(stdout).Encode(map[string]any{"error": true, "message": err.Error()})
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitError
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(jsonResult(result))
		return exitOK
	}

	useColor := !opts.noColor && !envNoColor
	printResult(stdout, result, opts, useColor)
	return exitOK
}

func runBatch(stdout, stderr io.Writer, opts options, cfg crackestimate.Config, envNoColor bool) int {
	if opts.arg == "" {
		fmt.Fprintln(stderr, "Error: password-file argument required")
		return exitUsageError
	}

	f, err := os.Open(opts.arg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			passwords = append(passwords, line)
		}
	}

	var results []crackestimate.Result
	for _, pw := range passwords {
		r, err := crackestimate.EstimateWithConfig(pw, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Error processing %q: %v\n", pw, err)
			continue
		}
		results = append(results, r)
	}

	if opts.json {
		outputBatchJSON(stdout, results)
	} else {
		useColor := !opts.noColor && !envNoColor
		outputBatchHuman(stdout, results, useColor)
	}
	return exitOK
}

func outputBatchJSON(w io.Writer, results []crackestimate.Result) {
	ratingDist := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}
	attackDist := make(map[string]int)
	crackTimes := make([]float64, len(results))
	for i, r := range results {
		ratingDist[r.Rating]++
		attackDist[r.WinningAttack]++
		crackTimes[i] = r.CrackTimeSeconds
	}
	sort.Float64s(crackTimes)
	var median float64
	if len(crackTimes) > 0 {
		median = crackTimes[len(crackTimes)/2]
	}

	type passwordRow struct {
		Password         string `json:"password"`
		CrackTimeSeconds any    `json:"crack_time_seconds"`
		CrackTimeDisplay string `json:"crack_time_display"`
		Rating           int    `json:"rating"`
		RatingLabel      string `json:"rating_label"`
		WinningAttack    string `json:"winning_attack"`
		GuessNumber      string `json:"guess_number"`
	}
	rows := make([]passwordRow, len(results))
	for i, r := range results {
		rows[i] = passwordRow{
			Password:         r.Password,
			CrackTimeSeconds: seconds(r.CrackTimeSeconds),
			CrackTimeDisplay: r.CrackTimeDisplay,
			Rating:           r.Rating,
			RatingLabel:      r.RatingLabel,
			WinningAttack:    r.WinningAttack,
			GuessNumber:      r.GuessNumber.String(),
		}
	}

	data := map[string]any{
		"total_passwords": len(results),
		"summary": map[string]any{
			"median_crack_time_seconds": seconds(median),
			"rating_distribution":       ratingDist,
			"winning_attack_distribution": attackDist,
		},
		"passwords": rows,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func seconds(f float64) any {
	if math.IsInf(f, 1) {
		return "infinity"
	}
	return f
}

func outputBatchHuman(w io.Writer, results []crackestimate.Result, useColor bool) {
	fmt.Fprintf(w, "Evaluated: %d passwords\n", len(results))
	if len(results) == 0 {
		return
	}

	crackTimes := make([]float64, len(results))
	for i, r := range results {
		crackTimes[i] = r.CrackTimeSeconds
	}
	sort.Float64s(crackTimes)
	median := crackTimes[len(crackTimes)/2]
	fmt.Fprintf(w, "Median crack time: %s\n", crackestimateFormatTime(median, results))

	ratingDist := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}
	for _, r := range results {
		ratingDist[r.Rating]++
	}

	fmt.Fprintln(w, "\nRating Distribution:")
	for rating := 0; rating <= 4; rating++ {
		count := ratingDist[rating]
		pct := float64(count) / float64(len(results)) * 100
		label := ratingLabelAt(results, rating)
		barLen := int(pct / 2)
		bar := strings.Repeat("#", barLen)
		line := fmt.Sprintf("  %-14s (%d): %5d (%5.1f%%)  %s", label, rating, count, pct, bar)
		if useColor {
			line = fmt.Sprintf("  %s (%d): %5d (%5.1f%%)  %s", colorize(fmt.Sprintf("%-14s", label), ratingColor(rating)), rating, count, pct, bar)
		}
		fmt.Fprintln(w, line)
	}

	sorted := append([]crackestimate.Result(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CrackTimeSeconds < sorted[j].CrackTimeSeconds })
	n := 5
	if len(sorted) < n {
		n = len(sorted)
	}
	fmt.Fprintln(w, "\nWeakest Passwords:")
	for i := 0; i < n; i++ {
		r := sorted[i]
		fmt.Fprintf(w, "  %d. %-20q -> %-15s (%s)\n", i+1, r.Password, r.CrackTimeDisplay, r.WinningAttack)
	}
}

// crackestimateFormatTime finds the display string already computed
// for a result whose crack time equals seconds, avoiding a second formatting
// pass over a value that already has a canonical display string.
func crackestimateFormatTime(seconds float64, results []crackestimate.Result) string {
	for _, r := range results {
		if r.CrackTimeSeconds == seconds {
			return r.CrackTimeDisplay
		}
	}
	return fmt.Sprintf("%.1f seconds", seconds)
}

func ratingLabelAt(results []crackestimate.Result, rating int) string {
	for _, r := range results {
		if r.Rating == rating {
			return r.RatingLabel
		}
	}
	labels := []string{"CRITICAL", "WEAK", "FAIR", "STRONG", "VERY STRONG"}
	if rating >= 0 && rating < len(labels) {
		return labels[rating]
	}
	return "UNKNOWN"
}

func printResult(w io.Writer, r crackestimate.Result, opts options, useColor bool) {
	fmt.Fprintf(w, "Password:      %s\n", r.Password)
	fmt.Fprintf(w, "Rating:        %s\n", ratingBar(r.Rating, r.RatingLabel, useColor))
	fmt.Fprintf(w, "Crack time:    %s\n", r.CrackTimeDisplay)
	fmt.Fprintf(w, "Guesses:       %s\n", r.GuessNumber.String())
	fmt.Fprintf(w, "Winning attack: %s\n", r.WinningAttack)
	fmt.Fprintf(w, "Algorithm:     %s @ %s\n", r.HashAlgorithm, r.HardwareTier)

	if opts.verbose && len(r.Decomposition) > 0 {
		fmt.Fprintln(w, "\nDecomposition:")
		for _, seg := range r.Decomposition {
			marker := "  - "
			if useColor {
				marker = "  " + colorize("-", ansiCyan) + " "
			}
			fmt.Fprintf(w, "%s%-20q [%s] guesses=%s\n", marker, seg.Token, seg.Type, seg.Guesses.String())
		}
	}
}

func jsonResult(r crackestimate.Result) map[string]any {
	return map[string]any{
		"password":           r.Password,
		"hash_algorithm":     r.HashAlgorithm,
		"hardware_tier":      r.HardwareTier,
		"guess_number":       r.GuessNumber.String(),
		"crack_time_seconds": seconds(r.CrackTimeSeconds),
		"crack_time_display": r.CrackTimeDisplay,
		"rating":             r.Rating,
		"rating_label":       r.RatingLabel,
		"winning_attack":     r.WinningAttack,
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `crackestimate %s - Password crack-time estimator

Usage:
  crackestimate estimate <password> [flags]
  crackestimate batch <password-file> [flags]

Flags:
  --json              Output result as JSON
  --verbose, -v       Show decomposition detail (estimate only)
  --no-color          Disable colored output
  --hash=ALG          Hash algorithm (default: bcrypt_cost12)
  --hardware=TIER     Hardware tier (default: consumer)
  --version           Show version
  --help, -h          Show this help message

Environment:
  NO_COLOR            Set to any value to disable colored output

Examples:
  crackestimate estimate "Tr0ub4dor&3"
  crackestimate estimate "qwerty" --json
  crackestimate batch passwords.txt --hash=sha256 --hardware=nation_state
  crackestimate estimate -- "-dashpassword"
`, version)
}
