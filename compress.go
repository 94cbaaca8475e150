package lemis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the on-blob encoding of an artifact. The reader
// never needs to be told: Open sniffs the stored bytes.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	}
	return "none"
}

// compressWriter wraps w in the chosen encoder. The returned closer
// must be closed before the underlying writer is flushed.
func compressWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	}
	return nil, fmt.Errorf("unknown compression %d", c)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// decompress sniffs the gzip and lz4 frame magics and inflates when
// either is present; anything else passes through untouched.
func decompress(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip artifact: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case len(data) >= 4 &&
		data[0] == 0x04 && data[1] == 0x22 && data[2] == 0x4d && data[3] == 0x18:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 artifact: %w", err)
		}
		return out, nil
	}
	return data, nil
}
