package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := FileHeader{
		BackendType:   BackendTypeRunLength,
		Flags:         FlagHasLocate,
		SymbolWidth:   1,
		OffsetWidth:   4,
		SamplingLevel: 3,
		TextLen:       12,
		AlphabetSize:  27,
		SectionCount:  2,
	}
	require.NoError(t, WriteHeader(&buf, &in))

	out, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(MagicNumber), out.Magic)
	assert.Equal(t, uint32(Version), out.Version)
	assert.Equal(t, in.BackendType, out.BackendType)
	assert.Equal(t, in.Flags, out.Flags)
	assert.Equal(t, in.SamplingLevel, out.SamplingLevel)
	assert.Equal(t, in.TextLen, out.TextLen)
	assert.Equal(t, in.AlphabetSize, out.AlphabetSize)
	assert.Equal(t, in.SectionCount, out.SectionCount)
}

func TestReadHeaderRejectsGarbage(t *testing.T) {
	t.Run("BadMagic", func(t *testing.T) {
		var buf bytes.Buffer
		in := FileHeader{BackendType: BackendTypePlain}
		require.NoError(t, WriteHeader(&buf, &in))

		raw := buf.Bytes()
		raw[0] ^= 0xff
		_, err := ReadHeader(bytes.NewReader(raw))
		require.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("BadBackend", func(t *testing.T) {
		var buf bytes.Buffer
		in := FileHeader{BackendType: 42}
		require.NoError(t, WriteHeader(&buf, &in))

		_, err := ReadHeader(&buf)
		require.ErrorIs(t, err, ErrInvalidBackend)
	})
}

func TestWidthFor(t *testing.T) {
	assert.Equal(t, uint8(1), WidthFor(0))
	assert.Equal(t, uint8(1), WidthFor(255))
	assert.Equal(t, uint8(2), WidthFor(256))
	assert.Equal(t, uint8(2), WidthFor(1<<16-1))
	assert.Equal(t, uint8(4), WidthFor(1<<16))
	assert.Equal(t, uint8(4), WidthFor(1<<32-1))
	assert.Equal(t, uint8(8), WidthFor(1<<32))
}

func TestUintsRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65535, 65536, 1 << 31}

	for _, width := range []uint8{4, 8} {
		data := AppendUints(nil, values, width)
		out, err := Uints(data, len(values), width)
		require.NoError(t, err)
		assert.Equal(t, values, out)
	}

	_, err := Uints([]byte{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrInvalidSection)
}

func TestSectionRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("abracadabra"), 100)

	for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		var buf bytes.Buffer
		require.NoError(t, WriteSection(&buf, SectionBWT, comp, payload))

		sec, err := ReadSection(&buf)
		require.NoError(t, err)
		assert.Equal(t, SectionBWT, sec.Kind)
		assert.Equal(t, payload, sec.Payload)
	}
}

func TestSectionDetectsCorruption(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	var buf bytes.Buffer
	require.NoError(t, WriteSection(&buf, SectionSuffixSamples, CompressionNone, payload))

	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff
	_, err := ReadSection(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}
