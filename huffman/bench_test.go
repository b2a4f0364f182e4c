package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/zstd"
)

func benchInputs() map[string][]byte {
	return map[string][]byte{
		"text":    []byte(strings.Repeat("All happy families are alike; each unhappy family is unhappy in its own way. ", 800)),
		"skewed":  randomBytes(64*1024, 6),
		"uniform": randomBytes(64*1024, 256),
	}
}

func BenchmarkCompress(b *testing.B) {
	for name, data := range benchInputs() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			var st Stats
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				var err error
				st, err = Compress(&buf, bytes.NewReader(data))
				if err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(st.Ratio(), "ratio%")
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, data := range benchInputs() {
		enc, _ := compressBytes(b, data)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				if _, err := Decompress(&buf, bytes.NewReader(enc)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReference runs the huff0 and zstd coders on the same inputs so
// their ratios can be read next to ours.
func BenchmarkReference(b *testing.B) {
	for name, data := range benchInputs() {
		b.Run(name+"/huff0", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			var s huff0.Scratch
			var out []byte
			for i := 0; i < b.N; i++ {
				var err error
				out, _, err = huff0.Compress1X(data, &s)
				if err == huff0.ErrIncompressible || err == huff0.ErrUseRLE {
					b.Skipf("huff0: %v", err)
				}
				if err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(len(out))/float64(len(data))*100, "ratio%")
		})
		b.Run(name+"/zstd", func(b *testing.B) {
			enc, err := zstd.NewWriter(nil)
			if err != nil {
				b.Fatal(err)
			}
			defer enc.Close()
			b.SetBytes(int64(len(data)))
			var out []byte
			for i := 0; i < b.N; i++ {
				out = enc.EncodeAll(data, out[:0])
			}
			b.ReportMetric(float64(len(out))/float64(len(data))*100, "ratio%")
		})
	}
}
