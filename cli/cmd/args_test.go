package cmd

import (
	"reflect"
	"testing"

	"github.com/asingingbird/hashcli/input"
)

func TestScanArgs_InterleavedTextAndFile(t *testing.T) {
	argv := []string{"hashcli", "--text", "A", "--file", "f", "--text", "B"}

	texts, files, err := ScanArgs(argv)
	if err != nil {
		t.Fatalf("ScanArgs error: %v", err)
	}

	wantTexts := []input.Input{
		{Kind: input.KindText, Value: "A", Index: 2},
		{Kind: input.KindText, Value: "B", Index: 6},
	}
	wantFiles := []input.Input{
		{Kind: input.KindFile, Value: "f", Index: 4},
	}
	if !reflect.DeepEqual(texts, wantTexts) {
		t.Errorf("texts = %v, want %v", texts, wantTexts)
	}
	if !reflect.DeepEqual(files, wantFiles) {
		t.Errorf("files = %v, want %v", files, wantFiles)
	}

	// End-to-end: resolving the scanned runs restores caller order.
	resolved, err := input.Resolve(texts, files)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	order := make([]string, len(resolved))
	for i, in := range resolved {
		order[i] = in.Value
	}
	if !reflect.DeepEqual(order, []string{"A", "f", "B"}) {
		t.Errorf("resolved order = %v, want [A f B]", order)
	}
}

func TestScanArgs_ShortAndInlineForms(t *testing.T) {
	argv := []string{"hashcli", "-t", "one", "--file=two", "-f", "three", "--text=four"}

	texts, files, err := ScanArgs(argv)
	if err != nil {
		t.Fatalf("ScanArgs error: %v", err)
	}

	if len(texts) != 2 || texts[0].Value != "one" || texts[1].Value != "four" {
		t.Errorf("texts = %v", texts)
	}
	if len(files) != 2 || files[0].Value != "two" || files[1].Value != "three" {
		t.Errorf("files = %v", files)
	}

	resolved, err := input.Resolve(texts, files)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	order := make([]string, len(resolved))
	for i, in := range resolved {
		order[i] = in.Value
	}
	want := []string{"one", "two", "three", "four"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("resolved order = %v, want %v", order, want)
	}
}

func TestScanArgs_IgnoresOtherFlags(t *testing.T) {
	argv := []string{"hashcli", "--md5", "-q", "--text", "A", "--hex"}

	texts, files, err := ScanArgs(argv)
	if err != nil {
		t.Fatalf("ScanArgs error: %v", err)
	}
	if len(texts) != 1 || texts[0].Value != "A" {
		t.Errorf("texts = %v", texts)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}

func TestScanArgs_MissingValue(t *testing.T) {
	if _, _, err := ScanArgs([]string{"hashcli", "--text"}); err == nil {
		t.Error("ScanArgs should reject a trailing flag with no value")
	}
}

func TestScanArgs_FlagLikeValue(t *testing.T) {
	// A value that looks like a flag is still consumed as the value.
	texts, _, err := ScanArgs([]string{"hashcli", "--text", "--md5"})
	if err != nil {
		t.Fatalf("ScanArgs error: %v", err)
	}
	if len(texts) != 1 || texts[0].Value != "--md5" {
		t.Errorf("texts = %v", texts)
	}
}
