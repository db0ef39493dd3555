// Package bsource loads the header bytes of a BSP file from disk. Maps that
// are shipped compressed (".gz", ".zst") are read through a decompressor.
package bsource

import (
	"io"
	"os"
	"strings"

	"bsp-inspector/bsp/bheader"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

func DetectCompression(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(lower, ".zst"):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

func readExact(r io.Reader, size int) ([]byte, error) {
	bs := make([]byte, size)
	if _, err := io.ReadFull(r, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func readExactFromFile(f *os.File, start int64, size int) ([]byte, error) {
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "readExactFromFile error seeking to %d", start)
	}
	return readExact(f, size)
}

func readHeader(f *os.File, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "readHeader error opening gzip stream")
		}
		defer zr.Close()
		return readExact(zr, bheader.DefaultHeaderSize)
	case CompressionZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "readHeader error opening zstd stream")
		}
		defer dec.Close()
		return readExact(dec, bheader.DefaultHeaderSize)
	default:
		return readExactFromFile(f, 0, bheader.DefaultHeaderSize)
	}
}

// ReadHeaderBytes returns exactly bheader.DefaultHeaderSize bytes from the
// start of the (decompressed) file at path.
func ReadHeaderBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadHeaderBytes error")
	}
	defer f.Close()

	bs, err := readHeader(f, DetectCompression(path))
	if err != nil {
		err := errors.Wrapf(err, `ReadHeaderBytes error reading header of "%s"`, path)
		return nil, err
	}
	return bs, nil
}
