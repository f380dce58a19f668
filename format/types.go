// Package format defines the enums and wire constants shared by the coord
// table serialization format.
package format

type (
	// TableKind identifies which coder produced the coordinates indexing a
	// table. It is stored in the table header purely as a consistency tag;
	// the table itself never interprets coordinates.
	TableKind uint8

	// CompressionType identifies the compression applied to a table payload.
	CompressionType uint8
)

const (
	KindGeneric     TableKind = 0x0 // KindGeneric marks a table with unspecified coordinate origin.
	KindPermutation TableKind = 0x1 // KindPermutation marks a factorial-number-system coordinate.
	KindPosition    TableKind = 0x2 // KindPosition marks a combinatorial-number-system coordinate.
	KindProperty    TableKind = 0x3 // KindProperty marks a mixed-radix parity coordinate.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Table wire format constants.
const (
	// TableMagic is the first four bytes of every serialized table
	// ("CTB1" little-endian).
	TableMagic uint32 = 0x31425443

	// TableVersion is the current table format version.
	TableVersion uint8 = 0x1

	// TableHeaderSize is the fixed byte length of the serialized header:
	// magic(4) + version(1) + kind(1) + compression(1) + reserved(1) +
	// entry count(8) + payload length(8) + checksum(8).
	TableHeaderSize = 32
)

func (k TableKind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindPermutation:
		return "Permutation"
	case KindPosition:
		return "Position"
	case KindProperty:
		return "Property"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
