package fmgo

import (
	"fmt"
	"io"

	"github.com/hupe1980/fmgo/blobstore"
	"github.com/hupe1980/fmgo/converter"
	"github.com/hupe1980/fmgo/internal/suffix"
	"github.com/hupe1980/fmgo/persistence"
	"golang.org/x/sync/errgroup"
)

// SaveOptions configure snapshot writing.
type SaveOptions struct {
	// Compression selects the section compression algorithm.
	// Default: ZSTD.
	Compression persistence.Compression
}

// LoadOptions configure snapshot loading.
type LoadOptions struct {
	// Logger is attached to the loaded index.
	Logger *Logger
}

// SaveToWriter writes a snapshot of the index to w.
func (idx *Index[T]) SaveToWriter(w io.Writer, optFns ...func(o *SaveOptions)) error {
	opts := SaveOptions{
		Compression: persistence.CompressionZSTD,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	err := idx.saveToWriter(w, opts)
	if idx.logger != nil {
		idx.logger.LogSnapshot("save", err)
	}
	return err
}

func (idx *Index[T]) saveToWriter(w io.Writer, opts SaveOptions) error {
	sigma := idx.conv.Size()
	symWidth := persistence.WidthFor(sigma - 1)
	offWidth := persistence.WidthFor(uint64(idx.Len()))

	h := persistence.FileHeader{
		SymbolWidth:  symWidth,
		OffsetWidth:  offWidth,
		TextLen:      uint64(idx.Len()),
		AlphabetSize: sigma,
		SectionCount: 1,
	}
	switch idx.back.kind() {
	case backendRunLength:
		h.BackendType = persistence.BackendTypeRunLength
	default:
		h.BackendType = persistence.BackendTypePlain
	}
	if idx.sa != nil {
		h.Flags |= persistence.FlagHasLocate
		h.SamplingLevel = uint32(idx.sa.Level())
		h.SectionCount = 2
	}

	// Section payloads are independent; encode them in parallel.
	var (
		bwtPayload, saPayload []byte
		g                     errgroup.Group
	)
	g.Go(func() error {
		bwtPayload = persistence.AppendUints(nil, idx.back.bwt(), symWidth)
		return nil
	})
	if idx.sa != nil {
		g.Go(func() error {
			values := idx.sa.Values()
			us := make([]uint64, len(values))
			for i, v := range values {
				us[i] = uint64(v)
			}
			saPayload = persistence.AppendUints(nil, us, offWidth)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := persistence.WriteHeader(w, &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := persistence.WriteSection(w, persistence.SectionBWT, opts.Compression, bwtPayload); err != nil {
		return fmt.Errorf("write BWT section: %w", err)
	}
	if idx.sa != nil {
		if err := persistence.WriteSection(w, persistence.SectionSuffixSamples, opts.Compression, saPayload); err != nil {
			return fmt.Errorf("write suffix samples section: %w", err)
		}
	}
	return nil
}

// SaveToFile writes a snapshot to filename atomically.
func (idx *Index[T]) SaveToFile(filename string, optFns ...func(o *SaveOptions)) error {
	return persistence.SaveToFile(filename, func(w io.Writer) error {
		return idx.SaveToWriter(w, optFns...)
	})
}

// SaveToStore writes a snapshot to the named blob.
func (idx *Index[T]) SaveToStore(store blobstore.BlobStore, name string, optFns ...func(o *SaveOptions)) error {
	w, err := store.Create(name)
	if err != nil {
		return err
	}
	if err := idx.SaveToWriter(w, optFns...); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// LoadFromReader reads a snapshot from r. conv must describe the same
// alphabet the index was built with; a size mismatch fails with
// ErrConverterMismatch.
func LoadFromReader[T converter.Symbol](r io.Reader, conv converter.Converter[T], optFns ...func(o *LoadOptions)) (*Index[T], error) {
	var opts LoadOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	h, err := persistence.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if conv.Size() != h.AlphabetSize {
		return nil, fmt.Errorf("%w: snapshot has %d, converter has %d", ErrConverterMismatch, h.AlphabetSize, conv.Size())
	}

	var (
		bwt     []uint64
		sampled *suffix.Array
	)
	for i := uint32(0); i < h.SectionCount; i++ {
		sec, err := persistence.ReadSection(r)
		if err != nil {
			return nil, err
		}

		switch sec.Kind {
		case persistence.SectionBWT:
			bwt, err = persistence.Uints(sec.Payload, int(h.TextLen), h.SymbolWidth)
			if err != nil {
				return nil, err
			}
		case persistence.SectionSuffixSamples:
			step := 1 << h.SamplingLevel
			count := (int(h.TextLen) + step - 1) / step
			us, err := persistence.Uints(sec.Payload, count, h.OffsetWidth)
			if err != nil {
				return nil, err
			}
			values := make([]int, len(us))
			for k, v := range us {
				values[k] = int(v)
			}
			sampled = suffix.FromValues(values, int(h.SamplingLevel))
		default:
			return nil, fmt.Errorf("%w: unknown kind %d", persistence.ErrInvalidSection, sec.Kind)
		}
	}
	if bwt == nil {
		return nil, fmt.Errorf("%w: missing BWT section", persistence.ErrInvalidSection)
	}
	if h.Flags&persistence.FlagHasLocate != 0 && sampled == nil {
		return nil, fmt.Errorf("%w: missing suffix samples section", persistence.ErrInvalidSection)
	}

	var back backend
	switch h.BackendType {
	case persistence.BackendTypeRunLength:
		back = newRunLengthBackend(bwt, h.AlphabetSize)
	default:
		back = newPlainBackend(bwt, h.AlphabetSize)
	}

	idx := &Index[T]{
		back:   back,
		conv:   conv,
		sa:     sampled,
		logger: opts.Logger,
	}
	if opts.Logger != nil {
		opts.Logger.LogSnapshot("load", nil)
	}
	return idx, nil
}

// LoadFromFile reads a snapshot from filename.
func LoadFromFile[T converter.Symbol](filename string, conv converter.Converter[T], optFns ...func(o *LoadOptions)) (*Index[T], error) {
	var idx *Index[T]
	err := persistence.LoadFromFile(filename, func(r io.Reader) error {
		var err error
		idx, err = LoadFromReader(r, conv, optFns...)
		return err
	})
	return idx, err
}

// LoadFromStore reads a snapshot from the named blob.
func LoadFromStore[T converter.Symbol](store blobstore.BlobStore, name string, conv converter.Converter[T], optFns ...func(o *LoadOptions)) (*Index[T], error) {
	b, err := store.Open(name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return LoadFromReader(io.NewSectionReader(b, 0, b.Size()), conv, optFns...)
}
