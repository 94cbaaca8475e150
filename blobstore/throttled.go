package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and rate-limits backend reads.
//
// Edge runtimes pull the full artifact from object storage on cold start;
// throttling keeps those pulls from saturating the link shared with
// latency-sensitive traffic.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore limited to bytesPerSec.
// If bytesPerSec <= 0, reads are unlimited.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &ThrottledStore{inner: inner, limiter: limiter}
}

// Open opens a blob whose reads are subject to the store's rate limit.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{inner: b, limiter: s.limiter}, nil
}

type throttledBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if b.limiter != nil && len(p) > 0 {
		n := len(p)
		// WaitN cannot exceed the limiter burst; split oversized requests.
		burst := b.limiter.Burst()
		for n > 0 {
			chunk := n
			if chunk > burst {
				chunk = burst
			}
			if err := b.limiter.WaitN(ctx, chunk); err != nil {
				return 0, err
			}
			n -= chunk
		}
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *throttledBlob) Size() int64 { return b.inner.Size() }

func (b *throttledBlob) Close() error { return b.inner.Close() }
