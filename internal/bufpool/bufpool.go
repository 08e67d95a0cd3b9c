// Package bufpool provides the process-wide, size-bucketed buffer pool
// described in spec §9 ("Pool of reusable buffers"): initialized lazily on
// first rental, thread-safe, and shared across every Reader/Writer in the
// process. It generalizes the ad hoc sync.Pool globals (recordPool,
// fieldPool) the teacher kept at package scope into a single reusable
// provider keyed by element kind and size bucket.
package bufpool

import "sync"

// bucket boundaries, chosen so most CSV rows/fields land in the smallest
// bucket that still avoids a reallocation on first use.
var byteBuckets = []int{256, 1024, 4096, 16384, 65536}

var bytePools = makeBytePools()

func makeBytePools() []*sync.Pool {
	pools := make([]*sync.Pool, len(byteBuckets))
	for i, size := range byteBuckets {
		size := size
		pools[i] = &sync.Pool{New: func() any {
			b := make([]byte, 0, size)
			return &b
		}}
	}
	return pools
}

func bucketFor(buckets []int, n int) int {
	for i, b := range buckets {
		if n <= b {
			return i
		}
	}
	return len(buckets) - 1
}

// GetBytes rents a []byte with at least hint bytes of capacity.
func GetBytes(hint int) []byte {
	idx := bucketFor(byteBuckets, hint)
	p := bytePools[idx].Get().(*[]byte)
	if cap(*p) < hint {
		return make([]byte, 0, hint)
	}
	return (*p)[:0]
}

// PutBytes returns a []byte previously obtained from GetBytes.
func PutBytes(b []byte) {
	idx := bucketFor(byteBuckets, cap(b))
	b = b[:0]
	bytePools[idx].Put(&b)
}

var runeBuckets = []int{64, 256, 1024, 4096}

var runePools = makeRunePools()

func makeRunePools() []*sync.Pool {
	pools := make([]*sync.Pool, len(runeBuckets))
	for i, size := range runeBuckets {
		size := size
		pools[i] = &sync.Pool{New: func() any {
			b := make([]rune, 0, size)
			return &b
		}}
	}
	return pools
}

// GetRunes rents a []rune with at least hint runes of capacity.
func GetRunes(hint int) []rune {
	idx := bucketFor(runeBuckets, hint)
	p := runePools[idx].Get().(*[]rune)
	if cap(*p) < hint {
		return make([]rune, 0, hint)
	}
	return (*p)[:0]
}

// PutRunes returns a []rune previously obtained from GetRunes.
func PutRunes(r []rune) {
	idx := bucketFor(runeBuckets, cap(r))
	r = r[:0]
	runePools[idx].Put(&r)
}
