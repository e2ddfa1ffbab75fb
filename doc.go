// Package quantpool provides a streaming decoder for quantized, chunked,
// memory-mappable columnar datasets ("quantized pools").
//
// A quantized pool is a column-oriented dataset whose feature values are
// already bit-packed by an external quantizer. The pool description
// (column layout, per-column chunk lists, quantization schema) is parsed
// by an external loader; this package takes that in-memory description
// and drives a single forward pass over it, delivering typed zero-copy
// parts to a push-based consumer.
//
// # Usage
//
//	loader, _ := quantpool.NewLoader(ctx, pool,
//	    quantpool.WithIgnoredFeatures([]uint32{3, 7}),
//	    quantpool.WithBaselinePath(pathscheme.Parse("baseline.tsv")),
//	)
//	err := loader.Do(ctx, visitor)
//
// The loader visits chunks in ascending backing-offset order, which
// matches the on-disk layout. Behind the read cursor it issues madvise
// advisories so the kernel can reclaim pages that will never be read
// again; resident memory stays roughly bounded by the eviction threshold
// plus the in-flight chunk, independent of dataset size.
//
// # Zero-copy contract
//
// Part payloads alias the pool's backing mapping. The visitor must copy
// any bytes it wants to keep before returning: once control returns, the
// backing pages may be advised away or the mapping released.
//
// Decoding is strictly forward and single-pass. There is no random
// access, no decompression, and no partial-success mode: the load either
// completes (Finish is called) or fails before completion.
package quantpool
