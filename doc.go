// Package fmgo provides a compressed full-text index (FM-index) for Go.
//
// An FM-index answers "how often does this pattern occur?" and "where
// does it occur?" over a static text without storing the text itself,
// in time proportional to the pattern length rather than the text
// length.
//
// # Quick Start
//
//	conv := converter.NewRange[byte]('a', 'z')
//	idx := fmgo.FMIndex[byte](conv).MustBuild([]byte("banana"))
//
//	s := idx.SearchBackward([]byte("ana"))
//	s.Count()     // 2
//	s.Locate()    // [1 3] (unordered)
//
// # Backends
//
// Two backends trade space for speed:
//
//	// FMIndex: full BWT in a wavelet matrix, O(n log sigma) space.
//	idx := fmgo.FMIndex[byte](conv).MustBuild(text)
//
//	// RLFMIndex: run-length compressed BWT. Highly repetitive texts
//	// collapse to few runs, shrinking the index dramatically.
//	idx := fmgo.RLFMIndex[byte](conv).MustBuild(text)
//
// Both answer the same queries with identical results.
//
// # Locate and Sampling
//
// Locate support costs extra space for sampled suffix array values.
// The sampling level trades that space against query time: level L
// keeps every 2^L-th value and pays up to 2^L-1 extra LF steps per
// located occurrence.
//
//	idx := fmgo.FMIndex[byte](conv).SamplingLevel(3).MustBuild(text)
//
// Count-only indexes drop the samples entirely:
//
//	idx := fmgo.FMIndex[byte](conv).CountOnly().MustBuild(text)
//	idx.SearchBackward(p).Count()   // works
//	idx.SearchBackward(p).Locate()  // ErrLocateUnsupported
//
// # Incremental Search
//
// A Search cursor can be narrowed by further backward searches, which
// is cheaper than searching the concatenated pattern from scratch and
// allows branching:
//
//	dolor := idx.SearchBackward([]byte("dolor"))
//	etDolor := dolor.SearchBackward([]byte("et "))  // matches "et dolor"
//
// Matched occurrences can be extended into their surrounding text with
// Search.IterBackward and Search.IterForward.
//
// # Snapshots
//
// Indexes serialize to a compact binary snapshot with per-section
// compression and checksums:
//
//	_ = idx.SaveToFile("text.fmg")
//	idx, _ = fmgo.LoadFromFile("text.fmg", conv)
//
// Snapshots can also be written to any blobstore.BlobStore.
package fmgo
