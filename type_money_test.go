package cashback

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{m: M(1234, "SGD"), want: "S$1,234.00"},
		{m: M(19.5, "USD"), want: "$19.50"},
		{m: M(42, ""), want: "42"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	var zero Money
	got := zero.Add(SGD(10))
	if got.Currency() != "SGD" {
		t.Errorf("Add() currency = %q, want SGD", got.Currency())
	}
	if got = SGD(10).Min(zero); !got.IsZero() || got.Currency() != "SGD" {
		t.Errorf("Min() = %v (%q), want 0 SGD", got, got.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when adding SGD to EUR")
		}
	}()
	SGD(1).Add(M(1, "EUR"))
}
