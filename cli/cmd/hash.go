package cmd

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/asingingbird/hashcli/cli/config"
	"github.com/asingingbird/hashcli/cli/render"
	"github.com/asingingbird/hashcli/digest"
	"github.com/asingingbird/hashcli/hexenc"
	"github.com/asingingbird/hashcli/input"
	"github.com/asingingbird/hashcli/log"
	"github.com/asingingbird/hashcli/source"
)

// Exit codes, following sysexits conventions.
const (
	exitUsage   = 64 // conflicting flags, missing inputs
	exitDataErr = 65 // invalid hex input
	exitIOErr   = 74 // unreadable file
)

// options holds the fully resolved run configuration after merging config
// file defaults with CLI flags.
type options struct {
	algo    digest.Algorithm
	hex     bool
	update  bool
	quiet   bool
	verbose bool
}

// HashAction is the compute action: it resolves the ordered input
// sequence, obtains bytes per input, feeds the digest engine, and renders
// the result.
func HashAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	opts, err := resolveOptions(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	texts, files, err := ScanArgs(os.Args)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	inputs, err := input.Resolve(texts, files)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	if len(inputs) == 0 {
		return cli.Exit("no inputs: provide --text or --file", exitUsage)
	}

	logger := log.NewLogger(opts.verbose)
	renderer := render.NewRenderer(opts.quiet)
	return run(inputs, opts, renderer, logger)
}

// run executes the digest pipeline over the resolved inputs.
//
// One-shot mode hashes each input independently. Incremental mode folds
// every input into one accumulator; non-quiet runs show the running
// digest per input, quiet runs emit only the final digest.
func run(inputs []input.Input, opts options, renderer *render.Renderer, logger *log.Logger) error {
	resolver := source.Resolver{HexMode: opts.hex}

	logger.Debug("starting run", map[string]any{
		"algorithm":   opts.algo.String(),
		"inputs":      len(inputs),
		"incremental": opts.update,
		"hex":         opts.hex,
	})

	if opts.update {
		acc := digest.NewAccumulator()
		for _, in := range inputs {
			data, err := resolver.Bytes(in)
			if err != nil {
				return exitError(err)
			}
			acc.Update(data)
			logger.Debug("updated", map[string]any{"kind": string(in.Kind), "bytes": len(data), "total": acc.Len()})
			if !opts.quiet {
				renderer.Entry(render.ModeUpdate, in, opts.algo, acc.RunningSum(opts.algo))
			}
		}
		final := acc.Finalize(opts.algo)
		if opts.quiet {
			renderer.Digest(final)
		}
		return nil
	}

	for _, in := range inputs {
		data, err := resolver.Bytes(in)
		if err != nil {
			return exitError(err)
		}
		renderer.Entry(render.ModeCompute, in, opts.algo, digest.Sum(data, opts.algo))
	}
	return nil
}

// loadConfig loads the explicit --config file, or the default file if
// present in the working directory.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if c.IsSet("config") {
		return config.Load(c.String("config"))
	}
	return config.LoadDefault()
}

// resolveOptions merges config file defaults with CLI flags. Flags win.
func resolveOptions(c *cli.Context, cfg *config.Config) (options, error) {
	algo, err := chooseAlgorithm(c.Bool("md5"), c.Bool("sha256"), c.Bool("blake3"), cfg.Algorithm)
	if err != nil {
		return options{}, err
	}

	boolOpt := func(name string, fallback bool) bool {
		if c.IsSet(name) {
			return c.Bool(name)
		}
		return fallback
	}

	return options{
		algo:    algo,
		hex:     boolOpt("hex", cfg.Hex),
		update:  boolOpt("update", cfg.Update),
		quiet:   boolOpt("quiet", cfg.Quiet),
		verbose: boolOpt("verbose", cfg.Verbose),
	}, nil
}

// chooseAlgorithm picks the run algorithm from the mutually exclusive
// algorithm flags, falling back to the config value, then the default.
func chooseAlgorithm(md5Set, sha256Set, blake3Set bool, cfgAlgo string) (digest.Algorithm, error) {
	count := 0
	for _, set := range []bool{md5Set, sha256Set, blake3Set} {
		if set {
			count++
		}
	}
	if count > 1 {
		return digest.Default, errors.New("only one of --md5, --sha256, --blake3 may be given")
	}

	switch {
	case md5Set:
		return digest.MD5, nil
	case sha256Set:
		return digest.SHA256, nil
	case blake3Set:
		return digest.BLAKE3, nil
	case cfgAlgo != "":
		return digest.ParseAlgorithm(cfgAlgo)
	default:
		return digest.Default, nil
	}
}

// exitError maps core error kinds to their exit codes: hex decode
// failures are data-format errors, unreadable files are I/O errors.
func exitError(err error) error {
	var tokenErr *hexenc.TokenError
	switch {
	case errors.As(err, &tokenErr):
		return cli.Exit(err.Error(), exitDataErr)
	case errors.Is(err, source.ErrUnreadable):
		return cli.Exit(err.Error(), exitIOErr)
	default:
		return cli.Exit(err.Error(), 1)
	}
}
