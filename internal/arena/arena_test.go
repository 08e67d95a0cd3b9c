package arena

import "testing"

func TestArenaAppendAndSlice(t *testing.T) {
	a := New()
	for _, r := range "hello" {
		a.Append(r)
	}
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", a.Len())
	}
	if got := a.String(0, 5); got != "hello" {
		t.Fatalf("String(0,5) = %q, want %q", got, "hello")
	}
	if got := string(a.Slice(1, 3)); got != "ell" {
		t.Fatalf("Slice(1,3) = %q, want %q", got, "ell")
	}
}

func TestArenaClearRetainsCapacity(t *testing.T) {
	a := New()
	for _, r := range "0123456789" {
		a.Append(r)
	}
	capBefore := cap(a.buf)
	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", a.Len())
	}
	if cap(a.buf) != capBefore {
		t.Fatalf("Clear reallocated: cap went from %d to %d", capBefore, cap(a.buf))
	}
}

func TestArenaAt(t *testing.T) {
	a := New()
	a.Append('x')
	a.Append('y')
	if a.At(1) != 'y' {
		t.Fatalf("At(1) = %q, want 'y'", a.At(1))
	}
}

func TestArenaReleaseClearsBuffer(t *testing.T) {
	a := New()
	a.Append('z')
	a.Release()
	if a.buf != nil {
		t.Fatal("Release() did not nil out the backing slice")
	}
}
