package coding

import "testing"

func BenchmarkEncodePermutation(b *testing.B) {
	data := []uint8{3, 6, 5, 7, 0, 2, 1, 4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = EncodePermutation[uint64](data)
	}
}

func BenchmarkDecodePermutation(b *testing.B) {
	ref := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodePermutation(uint64(21021), ref)
	}
}

func BenchmarkEncodePosition(b *testing.B) {
	data := []uint8{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = EncodePosition[uint64](data, func(x uint8) bool { return x != 0 })
	}
}

func BenchmarkDecodePosition(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodePosition(uint64(494), 4, 12)
	}
}

func BenchmarkEncodeProperty(b *testing.B) {
	data := []uint8{2, 0, 0, 1, 1, 0, 0, 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = EncodeProperty[uint64](data, func(d uint8) uint8 { return d }, 3)
	}
}

func BenchmarkDecodeProperty(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeProperty(uint64(1494), 3, 8)
	}
}
