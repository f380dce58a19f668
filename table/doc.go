// Package table provides dense coordinate-indexed entry tables for
// combinatorial search engines, with a checksummed, optionally compressed
// binary serialization.
//
// A table holds one byte per coordinate of a space produced by the coding
// package (or a product of such spaces). The typical use is a pruning table:
// allocate one entry per coordinate, fill it with BFS depths, marshal it
// once, and ship the compressed result to every solver process.
//
//	tbl, _ := table.New(495, table.WithKind(format.KindPosition))
//	_ = tbl.Set(coordValue, depth)
//	data, _ := tbl.Marshal()
//
//	loaded, _ := table.Unmarshal(data)
//
// Serialized tables carry a magic marker, a format version, the coordinate
// kind, the compression type, and an xxHash64 checksum of the payload, so a
// loader rejects truncated, corrupted or foreign data before using it.
package table
