// Package cmd provides CLI commands for the hashcli binary.
package cmd

import "github.com/urfave/cli/v2"

// Flags for the compute action. The three algorithm flags are mutually
// exclusive; --text and --file are repeatable and may be interleaved.
var (
	// MD5Flag selects the MD5 algorithm.
	MD5Flag = &cli.BoolFlag{
		Name:    "md5",
		Aliases: []string{"M"},
		Usage:   "Compute the hash using the MD5 algorithm",
	}

	// SHA256Flag selects the SHA-256 algorithm (the default).
	SHA256Flag = &cli.BoolFlag{
		Name:    "sha256",
		Aliases: []string{"S"},
		Usage:   "Compute the hash using the SHA-256 algorithm (default)",
	}

	// BLAKE3Flag selects the BLAKE3 algorithm.
	BLAKE3Flag = &cli.BoolFlag{
		Name:    "blake3",
		Aliases: []string{"B"},
		Usage:   "Compute the hash using the BLAKE3 algorithm",
	}

	// TextFlag supplies a literal text input. Repeatable.
	TextFlag = &cli.StringSliceFlag{
		Name:    "text",
		Aliases: []string{"t"},
		Usage:   "Compute the hash of this text (repeatable)",
	}

	// FileFlag supplies a file-path input. Repeatable.
	FileFlag = &cli.StringSliceFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Compute the hash of this file's content (repeatable)",
	}

	// UpdateFlag switches to incremental mode: inputs are folded into one
	// running state and a single digest covers the whole stream.
	UpdateFlag = &cli.BoolFlag{
		Name:    "update",
		Aliases: []string{"u"},
		Usage:   "Fold all inputs into one running hash instead of hashing each independently",
	}

	// HexFlag interprets input content as hex byte literals.
	HexFlag = &cli.BoolFlag{
		Name:    "hex",
		Aliases: []string{"H"},
		Usage:   "Treat text or file content as hex byte literals, e.g. '0x19 0xab 0xcd'",
	}

	// QuietFlag suppresses framing, emitting bare hex digests only.
	QuietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Do not print the text/file frame, just the hash",
	}

	// VerboseFlag enables debug diagnostics on stderr.
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug diagnostics",
	}

	// ConfigFlag points at an explicit YAML config file.
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to YAML config file (default: hashcli.yaml if present)",
	}
)

// HashFlags returns the flags for the compute action.
func HashFlags() []cli.Flag {
	return []cli.Flag{
		MD5Flag,
		SHA256Flag,
		BLAKE3Flag,
		TextFlag,
		FileFlag,
		UpdateFlag,
		HexFlag,
		QuietFlag,
		VerboseFlag,
		ConfigFlag,
	}
}
