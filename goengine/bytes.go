package goengine

import "unsafe"

// bytesOf returns the bytes of s without copying. The engine only ever reads its haystack, so the
// slice must never be written to.
func bytesOf(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
