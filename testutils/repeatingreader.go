package testutils

import (
	"io"
)

// RepeatingReader is an io.Reader that yields copies of Unit until exactly Length bytes have been read. The last copy may be cut short.
type RepeatingReader struct {
	Unit   []byte
	Length int
	pos    int
}

// Read fills p with the next bytes of the repeated Unit.
func (r *RepeatingReader) Read(p []byte) (n int, err error) {
	if len(r.Unit) == 0 || r.pos >= r.Length {
		err = io.EOF
		return
	}

	for n < len(p) && r.pos < r.Length {
		off := r.pos % len(r.Unit)
		chunk := r.Unit[off:]
		if rem := r.Length - r.pos; len(chunk) > rem {
			chunk = chunk[:rem]
		}

		c := copy(p[n:], chunk)
		n += c
		r.pos += c
	}

	return
}
