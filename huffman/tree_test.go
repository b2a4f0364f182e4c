package huffman

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func scenarioTree(t *testing.T) *Node {
	t.Helper()
	root, err := BuildTree(NewFrequencyTable(countsOf([]byte("AAAB"))))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestWriteTree(t *testing.T) {
	got := serialize(t, scenarioTree(t))
	want := []byte{0x01, 0x01, 0x02, 0x00, 'B', 0x00, 'A'}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
	if n := headerSize(scenarioTree(t)); n != int64(len(want)) {
		t.Errorf("headerSize = %d, want %d", n, len(want))
	}
}

func TestReadTreeRoundTrip(t *testing.T) {
	for _, input := range []string{"", "a", "AAAB", "abracadabra", "\x00\x01\x02\xff"} {
		root, err := BuildTree(NewFrequencyTable(countsOf([]byte(input))))
		if err != nil {
			t.Fatal(err)
		}
		enc := serialize(t, root)
		r := bytes.NewReader(append(enc, 0xee))
		got, err := ReadTree(r)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if !bytes.Equal(serialize(t, got), enc) {
			t.Errorf("%q: tree changed across a round trip", input)
		}
		if r.Len() != 1 {
			t.Errorf("%q: ReadTree consumed %d bytes past the header", input, 1-r.Len())
		}
	}
}

func TestReadTreeErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		header []byte
		want   error
	}{
		{"empty", nil, ErrTruncated},
		{"bad tag", []byte{0x03}, ErrMalformedHeader},
		{"bad tag 0xff", []byte{0xff, 0x02}, ErrMalformedHeader},
		{"bad nested tag", []byte{0x01, 0x02, 0x07}, ErrMalformedHeader},
		{"fork cut short", []byte{0x01, 0x02}, ErrTruncated},
		{"data leaf without value", []byte{0x01, 0x02, 0x00}, ErrTruncated},
		{"no eos", []byte{0x01, 0x00, 'a', 0x00, 'b'}, ErrMalformedHeader},
		{"lone data leaf", []byte{0x00, 'a'}, ErrMalformedHeader},
		{"two eos", []byte{0x01, 0x02, 0x02}, ErrMalformedHeader},
		{"repeated byte", []byte{0x01, 0x01, 0x00, 'a', 0x00, 'a', 0x02}, ErrMalformedHeader},
		{"too deep", bytes.Repeat([]byte{0x01}, 300), ErrMalformedHeader},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadTree(bytes.NewReader(test.header))
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func TestReadTreeLoneEOS(t *testing.T) {
	root, err := ReadTree(bytes.NewReader([]byte{0x02}))
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != KindEOS {
		t.Errorf("got %v, want eos", root.Kind)
	}
}
