package bheader

import (
	"encoding/binary"
	"io"
	"testing"

	"bsp-inspector/bsp/blump"
	"bsp-inspector/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putInt(bs []byte, offset int, value int32) {
	binary.LittleEndian.PutUint32(bs[offset:], uint32(value))
}

func createHeaderBytes() []byte {
	bs := make([]byte, DefaultHeaderSize)
	copy(bs[0:], "VBSP")
	putInt(bs, 4, 20)
	for i := 0; i < blump.NumLumps; i++ {
		offset := blump.Offset(i)
		putInt(bs, offset, int32(DefaultHeaderSize+i*64))
		putInt(bs, offset+4, int32(i*2))
		putInt(bs, offset+8, int32(i%2))
		copy(bs[offset+12:], []byte{byte(i), 1, 2, 3})
	}
	putInt(bs, MapRevisionOffset, 4242)
	return bs
}

func TestDefaultHeaderSize(t *testing.T) {
	assert.Equal(t, 1036, DefaultHeaderSize)
	assert.Equal(t, 1032, MapRevisionOffset)
}

func TestDecode(t *testing.T) {
	reader := lbytes.NewBytesReader(createHeaderBytes())

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{'V', 'B', 'S', 'P'}, header.Ident)
	assert.Equal(t, "VBSP", header.IdentString())
	assert.Equal(t, int32(20), header.Version)
	assert.Equal(t, int32(4242), header.MapRevision)
	assert.Equal(t, 0, reader.Len())

	for i, lump := range header.Lumps {
		assert.Equal(t, int32(DefaultHeaderSize+i*64), lump.FileOfs)
		assert.Equal(t, int32(i*2), lump.FileLen)
		assert.Equal(t, int32(i%2), lump.Version)
		assert.Equal(t, [4]byte{byte(i), 1, 2, 3}, lump.FourCC)
	}
}

func TestDecode_NoValidation(t *testing.T) {
	bs := make([]byte, DefaultHeaderSize)
	copy(bs, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	putInt(bs, 4, -7)

	header, err := Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0xDE, 0xAD, 0xBE, 0xEF}, header.Ident)
	assert.Equal(t, int32(-7), header.Version)
	assert.True(t, header.Lumps[0].IsEmpty())
	assert.Equal(t, int32(0), header.MapRevision)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	bs := append(createHeaderBytes(), 0xFF, 0xFF, 0xFF, 0xFF)
	reader := lbytes.NewBytesReader(bs)

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, int32(4242), header.MapRevision)
	assert.Equal(t, 4, reader.Len())
}

func TestDecode_Truncated(t *testing.T) {
	bs := createHeaderBytes()[:DefaultHeaderSize-2]

	header, err := Decode(lbytes.NewBytesReader(bs))
	assert.Nil(t, header)
	assert.ErrorContains(t, err, `reading key "map_revision"`)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestHeader_IdentString(t *testing.T) {
	header := Header{Ident: [4]byte{'I', 'B', 0, 0}}
	assert.Equal(t, "IB", header.IdentString())
}
