// Package main provides the hashcli CLI entrypoint.
//
// hashcli prints string or file checksums under MD5, SHA-256, or BLAKE3.
//
// Usage:
//
//	hashcli --[md5|sha256|blake3] --text <text>
//	hashcli --[md5|sha256|blake3] --file <path>
//
// Exit codes follow sysexits conventions:
//   - 0: success
//   - 64: usage error (conflicting flags, missing inputs)
//   - 65: data format error (invalid hex input)
//   - 74: I/O error (unreadable file)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/asingingbird/hashcli/cli/cmd"
	"github.com/asingingbird/hashcli/types"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:  "hashcli",
		Usage: "Print string or file checksums",
		UsageText: "hashcli --[md5|sha256|blake3] --text <text>\n" +
			"   hashcli --[md5|sha256|blake3] --file <path>",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		Flags:          cmd.HashFlags(),
		Action:         cmd.HashAction,
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder errors.
		// This branch handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler handles errors from the CLI, preserving exit codes from
// cli.Exit() so decode and read failures surface their sysexits codes.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	// Check for ExitCoder (from cli.Exit), handles wrapped errors
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N"; skip those
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	// Unexpected error - print and exit with code 1
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
