package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// SectionKind identifies the content of a snapshot section.
type SectionKind uint8

const (
	// SectionBWT holds the fixed-width coded BWT symbol sequence.
	SectionBWT SectionKind = 1
	// SectionSuffixSamples holds the retained suffix array values.
	SectionSuffixSamples SectionKind = 2
)

// sectionHeader precedes every section payload.
// Checksum covers the raw (uncompressed) payload.
type sectionHeader struct {
	Kind        uint8
	Compression uint8
	Reserved    uint16
	Checksum    uint32
	RawSize     uint64
	StoredSize  uint64
}

// Section is a decoded snapshot section.
type Section struct {
	Kind    SectionKind
	Payload []byte
}

// WriteSection frames payload with a section header, compressing it
// with comp. Incompressible payloads are stored raw.
func WriteSection(w io.Writer, kind SectionKind, comp Compression, payload []byte) error {
	stored, comp, err := compress(payload, comp)
	if err != nil {
		return fmt.Errorf("compress section %d: %w", kind, err)
	}

	h := sectionHeader{
		Kind:        uint8(kind),
		Compression: uint8(comp),
		Checksum:    crc32.ChecksumIEEE(payload),
		RawSize:     uint64(len(payload)),
		StoredSize:  uint64(len(stored)),
	}
	if err := binary.Write(w, byteOrder, &h); err != nil {
		return err
	}
	_, err = w.Write(stored)
	return err
}

// ReadSection reads one section, decompresses it and verifies its
// checksum.
func ReadSection(r io.Reader) (*Section, error) {
	var h sectionHeader
	if err := binary.Read(r, byteOrder, &h); err != nil {
		return nil, err
	}

	stored := make([]byte, h.StoredSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, err
	}

	payload, err := decompress(stored, Compression(h.Compression), int(h.RawSize))
	if err != nil {
		return nil, fmt.Errorf("decompress section %d: %w", h.Kind, err)
	}
	if sum := crc32.ChecksumIEEE(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: section %d: expected 0x%08x, got 0x%08x", ErrChecksumMismatch, h.Kind, h.Checksum, sum)
	}
	return &Section{Kind: SectionKind(h.Kind), Payload: payload}, nil
}
