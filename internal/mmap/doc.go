// Package mmap provides read-only memory-mapped file access with page
// advisory support.
//
// A Mapping exposes the file contents as a byte slice without copying.
// Advise hints the kernel about the expected access pattern, and Evict
// tells it a byte range behind the read cursor will never be touched
// again so its pages may be reclaimed. Both are best-effort: on platforms
// without madvise they are no-ops.
package mmap
