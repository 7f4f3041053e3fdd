package main

import (
	"bytes"
	"strings"
	"testing"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseArgs_SubcommandAndPassword(t *testing.T) {
	opts, err := parseArgs([]string{"estimate", "mypassword"})
	assertNoError(t, err)
	if opts.subcommand != "estimate" || opts.arg != "mypassword" {
		t.Errorf("subcommand/arg = %q/%q, want estimate/mypassword", opts.subcommand, opts.arg)
	}
}

func TestParseArgs_Flags(t *testing.T) {
	opts, err := parseArgs([]string{"estimate", "pw", "--json", "--verbose", "--hash=sha256", "--hardware=nation_state"})
	assertNoError(t, err)
	if !opts.json || !opts.verbose {
		t.Error("expected json and verbose set")
	}
	if opts.algorithm != "sha256" || opts.hardware != "nation_state" {
		t.Errorf("algorithm/hardware = %q/%q", opts.algorithm, opts.hardware)
	}
}

func TestParseArgs_DashSeparator(t *testing.T) {
	opts, err := parseArgs([]string{"estimate", "--", "-dashpassword"})
	assertNoError(t, err)
	if opts.arg != "-dashpassword" {
		t.Errorf("arg = %q, want -dashpassword", opts.arg)
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"estimate", "pw", "--bogus"})
	if err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestRun_EstimateHuman(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, []string{"estimate", "password"}, true)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%s", code, exitOK, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Rating:") {
		t.Errorf("output missing Rating line: %s", stdout.String())
	}
}

func TestRun_EstimateJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, []string{"estimate", "password", "--json"}, true)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%s", code, exitOK, stderr.String())
	}
	if !strings.Contains(stdout.String(), "\"rating\"") {
		t.Errorf("expected JSON output, got: %s", stdout.String())
	}
}

func TestRun_NoSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, nil, true)
	if code != exitUsageError {
		t.Errorf("exit code = %d, want %d", code, exitUsageError)
	}
}

func TestRun_MissingPassword(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, []string{"estimate"}, true)
	if code != exitUsageError {
		t.Errorf("exit code = %d, want %d", code, exitUsageError)
	}
}

func TestRun_UnknownSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, []string{"bogus", "pw"}, true)
	if code != exitUsageError {
		t.Errorf("exit code = %d, want %d", code, exitUsageError)
	}
}
