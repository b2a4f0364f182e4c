package huffman

import (
	"strings"
	"testing"
)

func TestPrintTree(t *testing.T) {
	var sb strings.Builder
	if err := PrintTree(&sb, scenarioTree(t)); err != nil {
		t.Fatal(err)
	}
	want := `        /--EOS
    /--<
        \--'B'
---<
    \--'A'
`
	if got := sb.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	sb.Reset()
	if err := PrintTree(&sb, NewEOSLeaf(0)); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "---EOS\n" {
		t.Errorf("lone leaf: got %q", got)
	}
}

func TestNodeString(t *testing.T) {
	got := NewFork(NewLeaf(0x41, 3), NewEOSLeaf(0)).String()
	want := "Left:[\nData:[41]\tFreq:[3]\n]\nRight:[\nEOS\n]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if KindFork.String() != "fork" || Kind(9).String() != "kind(0x09)" {
		t.Errorf("Kind strings: %s %s", KindFork, Kind(9))
	}
}
