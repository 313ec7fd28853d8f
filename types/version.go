package types

// Version is the canonical project version, shared by the CLI binary
// and the version subcommand.
const Version = "1.0.0"
