// Package render provides centralized output rendering for the hashcli CLI.
//
// Two shapes of output exist:
//   - Framed: a delimiter-bracketed block per digest, carrying the entry
//     preview and algorithm tag (the default, human-facing shape)
//   - Quiet: one bare hex digest per line, nothing else (script-facing)
//
// Digests always go to the renderer's writer (stdout by default); errors
// never pass through here.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/asingingbird/hashcli/digest"
	"github.com/asingingbird/hashcli/input"
)

// Mode labels for framed output.
const (
	// ModeCompute marks an independent one-shot digest.
	ModeCompute = "COMPUTE"
	// ModeUpdate marks a running digest in incremental mode.
	ModeUpdate = "UPDATE"
)

const (
	// previewLimit is the maximum number of characters of the entry shown
	// in the frame; longer entries are cut and marked with an ellipsis.
	previewLimit = 40

	// frameWidth is the length of the delimiter lines.
	frameWidth = 80
)

// Renderer handles digest output formatting.
type Renderer struct {
	quiet bool
	out   io.Writer
}

// NewRenderer creates a renderer writing to stdout.
func NewRenderer(quiet bool) *Renderer {
	return &Renderer{quiet: quiet, out: os.Stdout}
}

// NewRendererWithWriter creates a renderer with a custom writer (for testing).
func NewRendererWithWriter(quiet bool, out io.Writer) *Renderer {
	return &Renderer{quiet: quiet, out: out}
}

// Entry renders one digest for the given input. In quiet mode only the
// bare hex digest is emitted; otherwise a framed block:
//
//	================================================================================
//	[COMPUTE TEXT] [hello world]
//	[SHA256 HASH] [b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9]
//	================================================================================
func (r *Renderer) Entry(mode string, in input.Input, algo digest.Algorithm, d digest.Digest) {
	if r.quiet {
		r.Digest(d)
		return
	}

	preview, truncated := truncate(in.Value)
	etc := ""
	if truncated {
		etc = "..."
	}

	delim := strings.Repeat("=", frameWidth)
	fmt.Fprintln(r.out, delim)
	fmt.Fprintf(r.out, "[%s %s] [%s]%s\n", mode, in.Kind, preview, etc)
	fmt.Fprintf(r.out, "[%s HASH] [%s]\n", algo, d.Hex())
	fmt.Fprintln(r.out, delim)
}

// Digest emits the bare hex digest on its own line, regardless of quiet
// mode. Used for the single final digest of an incremental run.
func (r *Renderer) Digest(d digest.Digest) {
	fmt.Fprintln(r.out, d.Hex())
}

// truncate cuts s to the preview limit, reporting whether anything was cut.
// An entry of exactly the limit is shown whole, with no ellipsis.
func truncate(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s, false
	}
	return string(runes[:previewLimit]), true
}
