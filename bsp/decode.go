package bsp

import (
	"encoding/json"
	"fmt"

	"bsp-inspector/bsp/bheader"
	"bsp-inspector/bsp/blump"
	"bsp-inspector/bsp/lbytes"
	"github.com/cespare/xxhash/v2"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func ToStructuredFile(bs []byte) (*Struct, error) {
	if !HasFullHeader(bs) {
		msg := fmt.Sprintf(
			"ToStructuredFile error: need %d bytes for a header, got %d",
			bheader.DefaultHeaderSize, len(bs),
		)
		return nil, errors.New(msg)
	}
	reader := lbytes.NewBytesReader(bs)

	header, err := bheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ToStructuredFile error")
	}
	// the digest covers the header only, not whatever follows it
	headerBytes := bs[:reader.Position()]

	file := Struct{
		Header: *header,
		Digest: fmt.Sprintf("%016x", xxhash.Sum64(headerBytes)),
	}
	return &file, nil
}

func lumpToLinkedHashMap(index int, lump blump.Entry) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("index", index)
	lhm.Set("name", blump.Name(index))
	lhm.Set("file_ofs", lump.FileOfs)
	lhm.Set("file_len", lump.FileLen)
	lhm.Set("version", lump.Version)
	lhm.Set("four_cc", lump.FourCC)
	return lhm
}

func ToLinkedHashMap(file Struct) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("ident", file.Header.IdentString())
	lhm.Set("version", file.Header.Version)
	lhm.Set(
		"lumps",
		lo.Map(
			file.Header.Lumps[:],
			func(lump blump.Entry, index int) *orderedmap.OrderedMap {
				return lumpToLinkedHashMap(index, lump)
			},
		),
	)
	lhm.Set("map_revision", file.Header.MapRevision)
	lhm.Set("digest", file.Digest)
	return lhm
}

// DecodeBSP turns the header of a BSP file into indented JSON. With debug set,
// the raw decoded struct is dumped instead of the friendlier ordered view.
func DecodeBSP(bs []byte, debug bool) ([]byte, error) {
	decodedFile, err := ToStructuredFile(bs)
	if err != nil {
		return nil, err
	}

	var output any = ToLinkedHashMap(*decodedFile)
	if debug {
		output = decodedFile
	}
	decodedBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "DecodeBSP error")
	}
	return decodedBytes, nil
}
