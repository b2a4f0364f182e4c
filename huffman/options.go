package huffman

import "fmt"

const defaultBufferSize = 32 * 1024

// Config holds the tunables of Compress and Decompress.
type Config struct {
	BufferSize int // bufio size for the input and output streams
	MaxCodeLen int // longest codeword Compress accepts (1..MaxCodeLen)

	// TreeHook, if set, sees the tree once it is built or read.
	TreeHook func(root *Node)
	// Progress, if set, is called as each Stage begins.
	Progress func(Stage)
}

// A Stage is one step of a Compress or Decompress pass.
type Stage int

const (
	StageCount     Stage = iota // counting byte frequencies
	StageBuildTree              // merging the frequency table into a tree
	StagePaths                  // deriving codewords from the tree
	StageEncode                 // writing header and payload
	StageReadTree               // reading the header
	StageDecode                 // decoding the payload
)

func (s Stage) String() string {
	switch s {
	case StageCount:
		return "count"
	case StageBuildTree:
		return "build tree"
	case StagePaths:
		return "paths"
	case StageEncode:
		return "encode"
	case StageReadTree:
		return "read tree"
	case StageDecode:
		return "decode"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Option is a functional option for Compress and Decompress.
type Option func(*Config)

// WithBufferSize sets the size of the buffers wrapped around the streams.
// Values below 16 fall back to the default.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

// WithMaxCodeLen limits the codeword length. Compress fails with
// ErrCodeTooLong if the tree needs longer codewords. Values outside
// [1, MaxCodeLen] are clamped.
func WithMaxCodeLen(n int) Option {
	return func(c *Config) {
		c.MaxCodeLen = n
	}
}

// WithTreeHook registers fn to be called with the tree before any payload
// is written or read.
func WithTreeHook(fn func(root *Node)) Option {
	return func(c *Config) {
		c.TreeHook = fn
	}
}

// WithProgress registers fn to be called at the start of each Stage.
func WithProgress(fn func(Stage)) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}

func (c *Config) stage(s Stage) {
	if c.Progress != nil {
		c.Progress(s)
	}
}

func newConfig(opts []Option) Config {
	cfg := Config{BufferSize: defaultBufferSize, MaxCodeLen: MaxCodeLen}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BufferSize < 16 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.MaxCodeLen < 1 {
		cfg.MaxCodeLen = 1
	}
	if cfg.MaxCodeLen > MaxCodeLen {
		cfg.MaxCodeLen = MaxCodeLen
	}
	return cfg
}
