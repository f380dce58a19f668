package table

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/coord/compress"
	"github.com/arloliu/coord/endian"
	"github.com/arloliu/coord/errs"
	"github.com/arloliu/coord/format"
	"github.com/arloliu/coord/internal/options"
	"github.com/arloliu/coord/internal/pool"
)

// Table is a dense array of one-byte entries indexed by a coordinate from
// the coding package: the classic pruning or transposition table of a
// combinatorial search engine. Entry semantics (BFS depth, heuristic bound,
// visited flag) belong to the caller; the table stores, serializes and
// verifies them.
//
// A Table is not safe for concurrent mutation; concurrent Get calls without
// a concurrent Set are fine.
type Table struct {
	entries     []uint8
	kind        format.TableKind
	compression format.CompressionType
	engine      endian.EndianEngine
}

// Option represents a functional option for configuring a Table.
type Option = options.Option[*Table]

// WithKind tags the table with the coordinate kind that indexes it. The tag
// is serialized with the table as a consistency marker for loaders.
func WithKind(kind format.TableKind) Option {
	return options.NoError(func(t *Table) {
		t.kind = kind
	})
}

// WithCompression selects the codec used by Marshal. The default is Zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(t *Table) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
		}
		t.compression = compression

		return nil
	})
}

// WithLittleEndian sets the serialized byte order to little-endian, the
// default.
func WithLittleEndian() Option {
	return options.NoError(func(t *Table) {
		t.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets the serialized byte order to big-endian. Unmarshal
// detects the order from the magic bytes, so this only matters for
// interoperability with big-endian consumers.
func WithBigEndian() Option {
	return options.NoError(func(t *Table) {
		t.engine = endian.GetBigEndianEngine()
	})
}

// New creates a table with size entries, all zero.
//
// size is typically the cardinality of a coordinate space from the coding
// package: N! for permutation coordinates, C(N,K) for position coordinates,
// B^(N-1) for property coordinates, or a product of those for composite
// coordinates.
func New(size int, opts ...Option) (*Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidTableSize, size)
	}

	t := &Table{
		entries:     make([]uint8, size),
		kind:        format.KindGeneric,
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Kind returns the coordinate kind tag.
func (t *Table) Kind() format.TableKind {
	return t.kind
}

// Compression returns the codec Marshal will use.
func (t *Table) Compression() format.CompressionType {
	return t.compression
}

// Get returns the entry at coord.
func (t *Table) Get(coord uint64) (uint8, error) {
	if coord >= uint64(len(t.entries)) {
		return 0, fmt.Errorf("%w: coord %d, size %d", errs.ErrEntryOutOfRange, coord, len(t.entries))
	}

	return t.entries[coord], nil
}

// Set stores value at coord.
func (t *Table) Set(coord uint64, value uint8) error {
	if coord >= uint64(len(t.entries)) {
		return fmt.Errorf("%w: coord %d, size %d", errs.ErrEntryOutOfRange, coord, len(t.entries))
	}
	t.entries[coord] = value

	return nil
}

// Fill sets every entry to value. Pruning table generators use this to mark
// all states unvisited before a breadth-first fill.
func (t *Table) Fill(value uint8) {
	for i := range t.entries {
		t.entries[i] = value
	}
}

// Marshal serializes the table.
//
// Layout: a fixed 32-byte header (magic, version, kind, compression type,
// entry count, payload length, xxHash64 checksum of the payload) followed by
// the compressed entry payload. The checksum covers the payload as written,
// so corruption is detected before decompression runs.
func (t *Table) Marshal() ([]byte, error) {
	codec, err := compress.GetCodec(t.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(t.entries)
	if err != nil {
		return nil, fmt.Errorf("compress table payload: %w", err)
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)
	buf.Grow(format.TableHeaderSize + len(payload))

	b := t.engine.AppendUint32(buf.Bytes(), format.TableMagic)
	b = append(b, format.TableVersion, byte(t.kind), byte(t.compression), 0)
	b = t.engine.AppendUint64(b, uint64(len(t.entries)))
	b = t.engine.AppendUint64(b, uint64(len(payload)))
	b = t.engine.AppendUint64(b, xxhash.Sum64(payload))
	b = append(b, payload...)

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

// Unmarshal parses a table serialized by Marshal.
//
// The byte order is detected from the magic bytes, so tables serialized
// with either endianness load anywhere. The payload checksum is always
// verified; a mismatch fails with errs.ErrChecksumMismatch before any
// decompression is attempted.
func Unmarshal(data []byte) (*Table, error) {
	if len(data) < format.TableHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrPayloadTruncated, len(data), format.TableHeaderSize)
	}

	engine := endian.GetLittleEndianEngine()
	if engine.Uint32(data[0:4]) != format.TableMagic {
		engine = endian.GetBigEndianEngine()
		if engine.Uint32(data[0:4]) != format.TableMagic {
			return nil, errs.ErrInvalidMagic
		}
	}

	if version := data[4]; version != format.TableVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	kind := format.TableKind(data[5])
	compression := format.CompressionType(data[6])
	if !compression.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
	}

	count := engine.Uint64(data[8:16])
	payloadLen := engine.Uint64(data[16:24])
	checksum := engine.Uint64(data[24:32])

	if count == 0 {
		return nil, fmt.Errorf("%w: zero entries", errs.ErrInvalidTableSize)
	}
	if uint64(len(data)-format.TableHeaderSize) < payloadLen {
		return nil, fmt.Errorf("%w: payload needs %d bytes, %d available",
			errs.ErrPayloadTruncated, payloadLen, len(data)-format.TableHeaderSize)
	}

	payload := data[format.TableHeaderSize : format.TableHeaderSize+payloadLen]
	if xxhash.Sum64(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	entries, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress table payload: %w", err)
	}
	if compression == format.CompressionNone {
		// The no-op codec shares memory with the caller's buffer.
		entries = bytes.Clone(entries)
	}

	if uint64(len(entries)) != count {
		return nil, fmt.Errorf("%w: header claims %d entries, payload holds %d",
			errs.ErrPayloadTruncated, count, len(entries))
	}

	return &Table{
		entries:     entries,
		kind:        kind,
		compression: compression,
		engine:      engine,
	}, nil
}
