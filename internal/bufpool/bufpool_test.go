package bufpool

import "testing"

func TestGetBytesReturnsRequestedCapacity(t *testing.T) {
	b := GetBytes(100)
	if cap(b) < 100 {
		t.Fatalf("cap(b) = %d, want >= 100", cap(b))
	}
	if len(b) != 0 {
		t.Fatalf("len(b) = %d, want 0", len(b))
	}
}

func TestPutBytesRoundTrips(t *testing.T) {
	b := GetBytes(4096)
	b = append(b, []byte("hello")...)
	PutBytes(b)

	got := GetBytes(4096)
	if len(got) != 0 {
		t.Fatalf("len(got) = %d, want 0 after round trip", len(got))
	}
}

func TestGetRunesBucketsUp(t *testing.T) {
	r := GetRunes(10)
	if cap(r) < 10 {
		t.Fatalf("cap(r) = %d, want >= 10", cap(r))
	}
}

func TestBucketForLargerThanLargestBucket(t *testing.T) {
	b := GetBytes(1 << 20)
	if cap(b) < 65536 {
		t.Fatalf("cap(b) = %d, want >= largest bucket 65536", cap(b))
	}
}
