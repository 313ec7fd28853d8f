package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/asingingbird/hashcli/types"
)

// VersionCommand returns the version command.
// Commit is set via ldflags at build time.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "hashcli %s (commit: %s)\n", types.Version, commit)
			return nil
		},
	}
}
