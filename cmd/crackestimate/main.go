// Command crackestimate is a CLI tool for estimating password
// crack times.
//
// Usage:
//
//	crackestimate estimate <password> [flags]
//	crackestimate batch <password-file> [flags]
//	crackestimate estimate "Tr0ub4dor&3"
//	crackestimate estimate "qwerty" --json
//	crackestimate batch passwords.txt --hash=sha256 --hardware=nation_state
package main

import "os"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	envNoColor := os.Getenv("NO_COLOR") != ""
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:], envNoColor))
}
