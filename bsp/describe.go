package bsp

import (
	"fmt"
	"strings"

	"bsp-inspector/bsp/blump"
	"github.com/samber/lo"
)

func DescribeLump(index int, lump blump.Entry) string {
	return fmt.Sprintf(
		"[%2d] %-36s file_ofs: %10d, file_len: %10d, version: %d, four_cc: %v",
		index, blump.Name(index), lump.FileOfs, lump.FileLen, lump.Version, lump.FourCC,
	)
}

// Describe prints every field of the header, one lump per line. With
// nonEmptyOnly set, lumps that point nowhere are left out.
func Describe(file Struct, nonEmptyOnly bool) string {
	header := file.Header
	lines := []string{
		fmt.Sprintf("ident: %q %v", header.IdentString(), header.Ident),
		fmt.Sprintf("version: %d", header.Version),
		"lumps:",
	}
	lumpLines := lo.Map(
		header.Lumps[:],
		func(lump blump.Entry, index int) string {
			return "  " + DescribeLump(index, lump)
		},
	)
	lumpLines = lo.Filter(
		lumpLines,
		func(_ string, index int) bool {
			return !nonEmptyOnly || !header.Lumps[index].IsEmpty()
		},
	)
	lines = append(lines, lumpLines...)
	lines = append(
		lines,
		fmt.Sprintf("map_revision: %d", header.MapRevision),
		fmt.Sprintf("digest: %s", file.Digest),
	)
	return strings.Join(lines, "\n") + "\n"
}
