package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadInt() (int32, error) {
	bs, err := b.ReadBytes(IntSize)
	if err != nil {
		return 0, errors.Wrap(err, "ReadInt error")
	}
	result := binary.LittleEndian.Uint32(bs)
	return int32(result), nil
}

func (b *Reader) ReadTag() ([TagSize]byte, error) {
	tag := [TagSize]byte{}
	bs, err := b.ReadBytes(TagSize)
	if err != nil {
		return tag, errors.Wrap(err, "ReadTag error")
	}
	copy(tag[:], bs)
	return tag, nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	// a plain Read on bytes.Reader returns a partial slice without error
	// when there are fewer than n bytes left
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int64 {
	return b.Size() - int64(b.Len())
}
