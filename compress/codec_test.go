package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coord/errs"
	"github.com/arloliu/coord/format"
)

// tablePayload mimics a small pruning table: long runs of repeated depth
// values, the shape the codecs are tuned for.
func tablePayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(i / 64 % 12)
	}

	return payload
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := tablePayload(4096)

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	// Run-heavy table payloads must actually shrink under the real codecs.
	payload := tablePayload(64 * 1024)

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor()} {
		_, err := codec.Decompress(garbage)
		require.Error(t, err)
	}
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "table payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "table payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionLZ4)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestNoOp_SharesMemory(t *testing.T) {
	payload := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Same(t, &payload[0], &compressed[0])
}
