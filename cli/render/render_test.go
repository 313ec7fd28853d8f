package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/asingingbird/hashcli/digest"
	"github.com/asingingbird/hashcli/input"
)

func TestEntry_FramedLayout(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(false, &buf)

	d := digest.Sum([]byte("hello"), digest.SHA256)
	r.Entry(ModeCompute, input.Text("hello", 0), digest.SHA256, d)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("framed block has %d lines, want 4:\n%s", len(lines), buf.String())
	}

	delim := strings.Repeat("=", 80)
	if lines[0] != delim || lines[3] != delim {
		t.Error("framed block should open and close with an 80-char '=' delimiter")
	}
	if lines[1] != "[COMPUTE TEXT] [hello]" {
		t.Errorf("entry line = %q", lines[1])
	}
	if want := "[SHA256 HASH] [" + d.Hex() + "]"; lines[2] != want {
		t.Errorf("hash line = %q, want %q", lines[2], want)
	}
}

func TestEntry_FileKindAndUpdateMode(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(false, &buf)

	d := digest.Sum([]byte("x"), digest.MD5)
	r.Entry(ModeUpdate, input.File("/etc/hosts", 1), digest.MD5, d)

	out := buf.String()
	if !strings.Contains(out, "[UPDATE FILE] [/etc/hosts]") {
		t.Errorf("missing update/file entry line in:\n%s", out)
	}
	if !strings.Contains(out, "[MD5 HASH] [") {
		t.Errorf("missing MD5 hash line in:\n%s", out)
	}
}

func TestEntry_Truncation(t *testing.T) {
	tests := []struct {
		name         string
		entry        string
		wantPreview  string
		wantEllipsis bool
	}{
		{"short", "abc", "abc", false},
		{"exactly 40", strings.Repeat("a", 40), strings.Repeat("a", 40), false},
		{"41 chars", strings.Repeat("a", 41), strings.Repeat("a", 40), true},
		{"long", strings.Repeat("xy", 50), strings.Repeat("xy", 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRendererWithWriter(false, &buf)
			r.Entry(ModeCompute, input.Text(tt.entry, 0), digest.SHA256, digest.Sum(nil, digest.SHA256))

			want := "[COMPUTE TEXT] [" + tt.wantPreview + "]"
			if tt.wantEllipsis {
				want += "..."
			}
			if !strings.Contains(buf.String(), want+"\n") {
				t.Errorf("output missing %q:\n%s", want, buf.String())
			}
		})
	}
}

func TestEntry_Quiet(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(true, &buf)

	d := digest.Sum([]byte("hello"), digest.SHA256)
	r.Entry(ModeCompute, input.Text("hello", 0), digest.SHA256, d)

	if got, want := buf.String(), d.Hex()+"\n"; got != want {
		t.Errorf("quiet output = %q, want %q", got, want)
	}
	if strings.Contains(buf.String(), "=") {
		t.Error("quiet mode must not emit framing lines")
	}
}

func TestDigest_BareLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWriter(true, &buf)

	d := digest.Sum([]byte("final"), digest.BLAKE3)
	r.Digest(d)

	if got, want := buf.String(), d.Hex()+"\n"; got != want {
		t.Errorf("Digest output = %q, want %q", got, want)
	}
}
