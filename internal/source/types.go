package source

type (
	// FileID uniquely identifies a netlist file within a FileSet.
	FileID uint32
	// FileFlags encodes how the file content was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single netlist file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

func (lc LineCol) IsZero() bool {
	return lc.Line == 0 && lc.Col == 0
}
