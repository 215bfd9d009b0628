// Package mmap provides read-only memory-mapped file access.
//
// Mapping a haystack file avoids copying its contents through user-space
// buffers before a scan: the scanner reads the page cache directly.
//
//	m, err := mmap.Open("dump.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-copy view, valid until Close
//
// Unix platforms use mmap(2); Windows uses CreateFileMapping and
// MapViewOfFile. Close is idempotent; callers must ensure no goroutine
// touches Bytes() after Close returns.
package mmap
