package cashback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrZeroBase is returned for a rate whose base is not strictly positive.
	ErrZeroBase = errors.New("rate base must be positive")
	// ErrNegativeRate is returned for a rate with a negative per-base amount.
	ErrNegativeRate = errors.New("rate per base cannot be negative")
)

// Rate is an integer-truncated linear rule: for every full Base of cost,
// PerBase of cashback.
type Rate struct {
	PerBase decimal.Decimal
	Base    decimal.Decimal
}

// DefaultRates are the earn and spend rates used when nothing else is configured.
var DefaultRates = struct{ Earn, Spend Rate }{
	Earn:  NewRate(20, 100),
	Spend: NewRate(20, 100),
}

// NewRate returns the rate 'perBase' for every 'base'. It does not validate.
func NewRate[T int | int64 | float64 | decimal.Decimal](perBase, base T) Rate {
	return Rate{PerBase: newDecimal(perBase), Base: newDecimal(base)}
}

// ParseRate parses a rate in its text form "<perBase>/<base>", like "20/100".
func ParseRate(s string) (Rate, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rate{}, fmt.Errorf("invalid rate %q: expected <perBase>/<base>", s)
	}
	perBase, err := decimal.NewFromString(strings.TrimSpace(left))
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	base, err := decimal.NewFromString(strings.TrimSpace(right))
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	r := Rate{PerBase: perBase, Base: base}
	if err := r.Validate(); err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return r, nil
}

// Validate reports whether the rate can be applied to any cost.
func (r Rate) Validate() error {
	if !r.Base.IsPositive() {
		return ErrZeroBase
	}
	if r.PerBase.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

// Apply returns floor(m / Base) * PerBase. The quotient is exact, the rate
// must be valid.
func (r Rate) Apply(m Money) Money {
	q, _ := m.value.QuoRem(r.Base, 0)
	if m.value.IsNegative() {
		// QuoRem truncates toward zero.
		q = m.value.Div(r.Base).Floor()
	}
	return Money{value: q.Mul(r.PerBase), cur: m.cur}
}

func (r Rate) Equal(o Rate) bool {
	return r.PerBase.Equal(o.PerBase) && r.Base.Equal(o.Base)
}

func (r Rate) String() string { return r.PerBase.String() + "/" + r.Base.String() }

// MarshalText implements encoding.TextMarshaler.
func (r Rate) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rate) UnmarshalText(text []byte) error {
	v, err := ParseRate(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
