package input

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// NewThrottledReader wraps r so reads consume tokens from limiter, one token
// per byte. Reads block until the limiter releases enough tokens or ctx is
// canceled. A nil limiter returns r unchanged.
func NewThrottledReader(ctx context.Context, r io.Reader, limiter *rate.Limiter) io.Reader {
	if limiter == nil {
		return r
	}
	return &throttledReader{ctx: ctx, r: r, limiter: limiter}
}

type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	// A single reservation can never exceed the burst size.
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
