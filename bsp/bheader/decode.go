package bheader

import (
	"bsp-inspector/bsp/blump"
	"bsp-inspector/bsp/lbytes"
	"github.com/pkg/errors"
)

func createLumpsReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		return blump.DecodeBlock(reader)
	}
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	readTag := lbytes.CreateTagReadFunction(reader)
	readInt := lbytes.CreateIntReadFunction(reader)
	readLumps := createLumpsReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "ident", ReadFunction: readTag},
		{Key: "version", ReadFunction: readInt},
		{Key: "lumps", ReadFunction: readLumps},
		{Key: "map_revision", ReadFunction: readInt},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "bheader.Decode error")
		return nil, err
	}

	return header, nil
}
