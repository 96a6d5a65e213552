package field_test

import (
	"errors"
	"testing"

	"weierecdsa/bignat"
	"weierecdsa/field"
	"weierecdsa/internal/testutils"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		c, d, p, want uint64
	}{
		{4, 10, 11, 3},
		{4, 10, 31, 14},
	}
	for _, tc := range cases {
		s := field.New(bignat.FromUint64(tc.p))
		got, err := s.Add(bignat.FromUint64(tc.c), bignat.FromUint64(tc.d))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		testutils.AssertBigNatsEqual(t, "add", bignat.FromUint64(tc.want), got)
	}
}

func TestMult(t *testing.T) {
	cases := []struct {
		c, d, p, want uint64
	}{
		{4, 10, 11, 7},
		{4, 10, 51, 40},
	}
	for _, tc := range cases {
		s := field.New(bignat.FromUint64(tc.p))
		got, err := s.Mult(bignat.FromUint64(tc.c), bignat.FromUint64(tc.d))
		if err != nil {
			t.Fatalf("Mult: %v", err)
		}
		testutils.AssertBigNatsEqual(t, "mult", bignat.FromUint64(tc.want), got)
	}
}

func TestNeg(t *testing.T) {
	s := field.New(bignat.FromUint64(51))
	got, err := s.Neg(bignat.FromUint64(4))
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "neg(4) mod 51", bignat.FromUint64(47), got)
}

func TestNegZeroNormalizesToZero(t *testing.T) {
	s := field.New(bignat.FromUint64(51))
	got, err := s.Neg(bignat.Zero())
	if err != nil {
		t.Fatalf("Neg(0): %v", err)
	}
	testutils.AssertBigNatsEqual(t, "neg(0) mod 51", bignat.Zero(), got)
}

func TestNegRejectsOperandAtOrAboveModulus(t *testing.T) {
	s := field.New(bignat.FromUint64(51))
	if _, err := s.Neg(bignat.FromUint64(52)); !errors.Is(err, field.ErrPreconditionViolated) {
		t.Fatalf("expected ErrPreconditionViolated, got %v", err)
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	s := field.New(bignat.FromUint64(51))
	c := bignat.FromUint64(4)
	cInv, err := s.Neg(c)
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	sum, err := s.Add(c, cInv)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "c + neg(c)", bignat.Zero(), sum)
}

func TestSub(t *testing.T) {
	s := field.New(bignat.FromUint64(51))
	c := bignat.FromUint64(4)
	got, err := s.Sub(c, c)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "c - c", bignat.Zero(), got)
}

func TestInvMultIsMultiplicativeInverse(t *testing.T) {
	s := field.New(bignat.FromUint64(11))
	c := bignat.FromUint64(4)
	cInv, err := s.InvMult(c)
	if err != nil {
		t.Fatalf("InvMult: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "4^-1 mod 11", bignat.FromUint64(3), cInv)

	prod, err := s.Mult(c, cInv)
	if err != nil {
		t.Fatalf("Mult: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "c * c^-1", bignat.One(), prod)
}

func TestInvMultOfZeroIsNotAValidInverse(t *testing.T) {
	s := field.New(bignat.FromUint64(11))
	if _, err := s.InvMult(bignat.Zero()); !errors.Is(err, field.ErrPreconditionViolated) {
		t.Fatalf("expected ErrPreconditionViolated inverting zero, got %v", err)
	}
}

func TestDivide(t *testing.T) {
	s := field.New(bignat.FromUint64(11))
	c := bignat.FromUint64(4)
	got, err := s.Div(c, c)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	testutils.AssertBigNatsEqual(t, "c / c", bignat.One(), got)
}
