package bignat_test

import (
	"testing"

	"weierecdsa/bignat"
	"weierecdsa/internal/testutils"
)

func TestHexRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "ff", "deadbeef", "10000000000000000"}
	for _, c := range cases {
		n, err := bignat.FromHex(c)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", c, err)
		}
		if got := n.Hex(); got != c {
			t.Errorf("hex round-trip: got %q, want %q", got, c)
		}
	}
}

func TestFromHexAcceptsPrefixAndCase(t *testing.T) {
	lower, err := bignat.FromHex("0xabcd")
	if err != nil {
		t.Fatalf("FromHex lower: %v", err)
	}
	upper, err := bignat.FromHex("ABCD")
	if err != nil {
		t.Fatalf("FromHex upper: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "0xabcd vs ABCD", lower, upper)
}

func TestFromHexRejectsGarbage(t *testing.T) {
	if _, err := bignat.FromHex("not-hex"); err == nil {
		t.Fatal("expected error for non-hex string")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	n := bignat.FromBytes(want)
	testutils.AssertBytesEqual(t, "big-endian bytes", want, n.Bytes())
}

func TestZeroBytesIsSingleZeroByte(t *testing.T) {
	testutils.AssertBytesEqual(t, "zero bytes", []byte{0}, bignat.Zero().Bytes())
}

func TestAddSubRoundTrip(t *testing.T) {
	a := bignat.FromUint64(41)
	b := bignat.FromUint64(17)
	sum := a.Add(b)
	back, err := sum.Sub(b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "a+b-b", a, back)
}

func TestSubRejectsNegativeResult(t *testing.T) {
	a := bignat.FromUint64(3)
	b := bignat.FromUint64(4)
	if _, err := a.Sub(b); err != bignat.ErrNegativeResult {
		t.Fatalf("expected ErrNegativeResult, got %v", err)
	}
}

func TestBitIndexedFromLSB(t *testing.T) {
	// 0b1010 = 10: bit 0 is 0, bit 1 is 1, bit 2 is 0, bit 3 is 1.
	n := bignat.FromUint64(10)
	want := []uint{0, 1, 0, 1}
	for i, w := range want {
		if got := n.Bit(i); got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBitLen(t *testing.T) {
	cases := map[uint64]int{0: 0, 1: 1, 2: 2, 3: 2, 255: 8, 256: 9}
	for v, want := range cases {
		if got := bignat.FromUint64(v).BitLen(); got != want {
			t.Errorf("BitLen(%d): got %d, want %d", v, got, want)
		}
	}
}

func TestExpModular(t *testing.T) {
	// 3^4 mod 7 = 81 mod 7 = 4
	base := bignat.FromUint64(3)
	got := base.Exp(bignat.FromUint64(4), bignat.FromUint64(7))
	testutils.AssertBigNatsEqual(t, "3^4 mod 7", bignat.FromUint64(4), got)
}
