package bheader

import (
	"strings"

	"bsp-inspector/bsp/blump"
)

type (
	Header struct {
		Ident       [4]byte                     `json:"ident"`
		Version     int32                       `json:"version"`
		Lumps       [blump.NumLumps]blump.Entry `json:"lumps"`
		MapRevision int32                       `json:"map_revision"`
	}
)

const (
	DefaultHeaderSize = blump.BlockOffset + blump.BlockLength + 4
	MapRevisionOffset = blump.BlockOffset + blump.BlockLength
)

// IdentString renders the ident as text with trailing zero bytes trimmed.
// The bytes are not checked against any known format tag.
func (h Header) IdentString() string {
	return strings.TrimRight(string(h.Ident[:]), "\u0000")
}
