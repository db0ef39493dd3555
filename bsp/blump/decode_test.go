package blump

import (
	"encoding/binary"
	"io"
	"testing"

	"bsp-inspector/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeEntry(entry Entry) []byte {
	bs := make([]byte, DefaultEntrySize)
	binary.LittleEndian.PutUint32(bs[0:], uint32(entry.FileOfs))
	binary.LittleEndian.PutUint32(bs[4:], uint32(entry.FileLen))
	binary.LittleEndian.PutUint32(bs[8:], uint32(entry.Version))
	copy(bs[12:], entry.FourCC[:])
	return bs
}

func TestDecodeEntry(t *testing.T) {
	expected := Entry{
		FileOfs: 1036,
		FileLen: 20480,
		Version: 1,
		FourCC:  [4]byte{'L', 'Z', 'M', 'A'},
	}
	reader := lbytes.NewBytesReader(encodeEntry(expected))

	entry, err := DecodeEntry(reader)
	require.NoError(t, err)
	assert.Equal(t, expected, *entry)
	assert.Equal(t, 0, reader.Len())
}

func TestDecodeEntry_Negative(t *testing.T) {
	expected := Entry{
		FileOfs: -1,
		FileLen: -2147483648,
		Version: 2147483647,
	}
	entry, err := DecodeEntry(lbytes.NewBytesReader(encodeEntry(expected)))
	require.NoError(t, err)
	assert.Equal(t, expected, *entry)
}

func TestDecodeBlock(t *testing.T) {
	expected := lo.Map(
		lo.Range(NumLumps),
		func(i int, _ int) Entry {
			return Entry{
				FileOfs: int32(i * 100),
				FileLen: int32(i),
				Version: int32(i % 3),
				FourCC:  [4]byte{byte(i), 0, 0, byte(i)},
			}
		},
	)
	bs := make([]byte, 0, BlockLength)
	lo.ForEach(
		expected,
		func(entry Entry, _ int) {
			bs = append(bs, encodeEntry(entry)...)
		},
	)

	block, err := DecodeBlock(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, expected, block[:])
}

func TestDecodeBlock_Short(t *testing.T) {
	bs := make([]byte, BlockLength-1)
	_, err := DecodeBlock(lbytes.NewBytesReader(bs))
	assert.ErrorContains(t, err, "at lump 63")
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 8, Offset(0))
	assert.Equal(t, 24, Offset(1))
	assert.Equal(t, 1016, Offset(63))
	assert.Equal(t, 1032, Offset(NumLumps))
	assert.Equal(t, BlockOffset+BlockLength, Offset(NumLumps))
}

func TestName(t *testing.T) {
	assert.Equal(t, "LUMP_ENTITIES", Name(0))
	assert.Equal(t, "LUMP_GAME_LUMP", Name(35))
	assert.Equal(t, "LUMP_PAKFILE", Name(40))
	assert.Equal(t, "LUMP_DISP_MULTIBLEND", Name(63))
	assert.Equal(t, NameUnknown, Name(-1))
	assert.Equal(t, NameUnknown, Name(64))
}

func TestEntry_IsEmpty(t *testing.T) {
	assert.True(t, Entry{}.IsEmpty())
	assert.True(t, Entry{Version: 3}.IsEmpty())
	assert.False(t, Entry{FileOfs: 1036}.IsEmpty())
}
