package blump

type (
	// Entry is one slot of the lump directory. It only says where a lump lives;
	// what is stored there is left alone.
	Entry struct {
		FileOfs int32   `json:"file_ofs"`
		FileLen int32   `json:"file_len"`
		Version int32   `json:"version"`
		FourCC  [4]byte `json:"four_cc"`
	}
)

const (
	DefaultEntrySize = 16
	NumLumps         = 64
	// BlockOffset is where the directory starts inside the header,
	// right after the ident and the version.
	BlockOffset = 8
	BlockLength = NumLumps * DefaultEntrySize
)

func (e Entry) IsEmpty() bool {
	return e.FileOfs == 0 && e.FileLen == 0
}

// Offset returns the position of lump i's entry within the header bytes.
func Offset(i int) int {
	return BlockOffset + i*DefaultEntrySize
}
