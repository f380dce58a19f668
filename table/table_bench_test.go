package table

import (
	"testing"

	"github.com/arloliu/coord/format"
)

func benchTable(b *testing.B, compression format.CompressionType) *Table {
	b.Helper()
	tbl, err := New(64*1024, WithCompression(compression))
	if err != nil {
		b.Fatal(err)
	}
	for c := 0; c < tbl.Len(); c++ {
		_ = tbl.Set(uint64(c), uint8(c/64%12))
	}

	return tbl
}

func BenchmarkMarshal(b *testing.B) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		b.Run(compression.String(), func(b *testing.B) {
			tbl := benchTable(b, compression)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = tbl.Marshal()
			}
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		b.Run(compression.String(), func(b *testing.B) {
			data, err := benchTable(b, compression).Marshal()
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Unmarshal(data)
			}
		})
	}
}
