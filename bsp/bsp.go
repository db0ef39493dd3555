// Package bsp stores the code to decode the header of BSP map files.
package bsp

import (
	"bsp-inspector/bsp/bheader"
)

type (
	Struct struct {
		Header bheader.Header `json:"header"`

		// Digest is the hex xxhash64 of the raw header bytes, handy for telling
		// apart maps that share a name.
		Digest string `json:"digest"`
	}
)

// HasFullHeader only checks the length; the ident is never validated.
func HasFullHeader(bs []byte) bool {
	return len(bs) >= bheader.DefaultHeaderSize
}
