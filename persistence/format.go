// Package persistence defines the binary snapshot format for saved
// indexes: a fixed-size file header followed by framed sections, each
// independently compressed and protected by a CRC32 checksum.
package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// MagicNumber identifies fmgo snapshot files (ASCII: "FMG0").
	MagicNumber = 0x464D4730
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	// Backend types
	BackendTypePlain     = 1
	BackendTypeRunLength = 2
)

// FlagHasLocate marks snapshots carrying suffix array samples.
const FlagHasLocate = 1 << 0

var (
	ErrInvalidMagic     = errors.New("invalid magic number")
	ErrInvalidVersion   = errors.New("unsupported version")
	ErrInvalidBackend   = errors.New("invalid backend type")
	ErrInvalidSection   = errors.New("invalid section")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// FileHeader is the 64-byte header at the start of every snapshot.
type FileHeader struct {
	Magic         uint32   // 0x464D4730 ("FMG0")
	Version       uint32   // Snapshot format version
	BackendType   uint8    // 1=plain, 2=run-length
	Flags         uint8    // FlagHasLocate
	SymbolWidth   uint8    // Bytes per stored BWT symbol (1, 2, 4 or 8)
	OffsetWidth   uint8    // Bytes per stored suffix array sample
	SamplingLevel uint32   // Suffix array sampling level
	TextLen       uint64   // Rows including the terminator
	AlphabetSize  uint64   // Coded alphabet size including the terminator
	SectionCount  uint32   // Number of sections following the header
	Reserved      [28]byte // Future use
}

var byteOrder = binary.LittleEndian

// WriteHeader writes the header, filling in magic and version.
func WriteHeader(w io.Writer, h *FileHeader) error {
	h.Magic = MagicNumber
	h.Version = Version
	return binary.Write(w, byteOrder, h)
}

// ReadHeader reads and validates the header.
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var h FileHeader
	if err := binary.Read(r, byteOrder, &h); err != nil {
		return nil, err
	}
	if h.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, h.Version)
	}
	if h.BackendType != BackendTypePlain && h.BackendType != BackendTypeRunLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBackend, h.BackendType)
	}
	return &h, nil
}

// WidthFor returns the smallest supported byte width (1, 2, 4 or 8)
// that can hold max.
func WidthFor(max uint64) uint8 {
	switch {
	case max < 1<<8:
		return 1
	case max < 1<<16:
		return 2
	case max < 1<<32:
		return 4
	default:
		return 8
	}
}

// AppendUints appends values to dst in little-endian order using width
// bytes per value.
func AppendUints(dst []byte, values []uint64, width uint8) []byte {
	for _, v := range values {
		switch width {
		case 1:
			dst = append(dst, byte(v))
		case 2:
			dst = byteOrder.AppendUint16(dst, uint16(v))
		case 4:
			dst = byteOrder.AppendUint32(dst, uint32(v))
		default:
			dst = byteOrder.AppendUint64(dst, v)
		}
	}
	return dst
}

// Uints decodes count fixed-width values from data.
func Uints(data []byte, count int, width uint8) ([]uint64, error) {
	if len(data) != count*int(width) {
		return nil, fmt.Errorf("%w: %d bytes for %d values of width %d", ErrInvalidSection, len(data), count, width)
	}
	out := make([]uint64, count)
	for i := range out {
		p := data[i*int(width):]
		switch width {
		case 1:
			out[i] = uint64(p[0])
		case 2:
			out[i] = uint64(byteOrder.Uint16(p))
		case 4:
			out[i] = uint64(byteOrder.Uint32(p))
		default:
			out[i] = byteOrder.Uint64(p)
		}
	}
	return out, nil
}
