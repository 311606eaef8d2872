// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// An anonymous mapping is read-write memory obtained directly from the
// operating system, outside the Go garbage collector's control. Blocks
// allocated this way are never scanned or moved by the collector, which
// makes them suitable as raw element storage with manually managed
// lifetimes.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Lifetime
//
// Close() is idempotent. Callers must ensure no access to Bytes() after
// Close() returns; the memory is gone and touching it will crash.
package mmap
