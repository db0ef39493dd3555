package blump

import (
	"bsp-inspector/bsp/lbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	readInt := lbytes.CreateIntReadFunction(reader)
	readTag := lbytes.CreateTagReadFunction(reader)

	lumpInstructions := []lbytes.Instruction{
		{Key: "file_ofs", ReadFunction: readInt},
		{Key: "file_len", ReadFunction: readInt},
		{Key: "version", ReadFunction: readInt},
		{Key: "four_cc", ReadFunction: readTag},
	}
	entry, err := lbytes.ExecuteInstructions[Entry](lumpInstructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

// DecodeBlock reads the whole lump directory. The reader must be positioned
// at BlockOffset.
func DecodeBlock(reader *lbytes.Reader) ([NumLumps]Entry, error) {
	entries := [NumLumps]Entry{}
	for i := 0; i < NumLumps; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "blump.DecodeBlock error at lump %d", i)
			return entries, err
		}
		if entry == nil {
			return entries, errors.New("blump.DecodeBlock unreachable code")
		}
		entries[i] = *entry
	}

	return entries, nil
}
