package input

import (
	"io"
)

// initialBufSize is the starting capacity of the ReadAll buffer.
const initialBufSize = 1024

// ReadAll reads r until EOF into a single contiguous buffer and returns it.
// The buffer is grown by amortized doubling, so total copying stays linear
// in the final size. A stream that is empty yields an empty, non-nil buffer.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, initialBufSize)
	for {
		if len(buf) == cap(buf) {
			// Grow: append reallocates with the runtime's doubling
			// policy; the extra element is sliced back off.
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
