package cashback

import (
	"errors"
	"fmt"
)

// ErrNegativeCost is returned when an item is built with a negative cost.
var ErrNegativeCost = errors.New("cost cannot be negative")

// Decision is what was done with an item's cashback.
type Decision int

const (
	Undecided Decision = iota
	Earn               // the item accrues cashback.
	Spend              // the item redeems available cashback.
)

func (d Decision) String() string {
	switch d {
	case Earn:
		return "earn"
	case Spend:
		return "spend"
	default:
		return "undecided"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Decision) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decision) UnmarshalText(text []byte) error {
	switch string(text) {
	case "earn":
		*d = Earn
	case "spend":
		*d = Spend
	case "", "undecided":
		*d = Undecided
	default:
		return fmt.Errorf("unknown decision %q", text)
	}
	return nil
}

// Item is an immutable purchase line.
//
// An Item comes out of NewItem undecided. Earn and Spend return realized
// copies, the receiver is never changed.
type Item struct {
	name     string
	cost     Money
	earn     Rate
	spend    Rate
	decision Decision
	applied  Money // cashback redeemed, only for Spend.
}

// NewItem creates a valid undecided item.
func NewItem(name string, cost Money, earn, spend Rate) (Item, error) {
	if cost.IsNegative() {
		return Item{}, fmt.Errorf("item %q: %w", name, ErrNegativeCost)
	}
	if err := earn.Validate(); err != nil {
		return Item{}, fmt.Errorf("item %q: invalid earn rate %s: %w", name, earn, err)
	}
	if err := spend.Validate(); err != nil {
		return Item{}, fmt.Errorf("item %q: invalid spend rate %s: %w", name, spend, err)
	}
	return Item{name: name, cost: cost, earn: earn, spend: spend}, nil
}

// MustNewItem is like NewItem but panics on invalid input.
func MustNewItem(name string, cost Money, earn, spend Rate) Item {
	it, err := NewItem(name, cost, earn, spend)
	if err != nil {
		panic(err)
	}
	return it
}

func (it Item) Name() string       { return it.name }
func (it Item) Cost() Money        { return it.cost }
func (it Item) EarnRate() Rate     { return it.earn }
func (it Item) SpendRate() Rate    { return it.spend }
func (it Item) Decision() Decision { return it.decision }

// CashbackApplied is the cashback redeemed on a Spend item, zero otherwise.
func (it Item) CashbackApplied() Money { return it.applied }

// CashbackEarned is the cashback this item accrues when earning.
func (it Item) CashbackEarned() Money { return it.earn.Apply(it.cost) }

// MaxRedeemable is the most cashback this item accepts when spending.
func (it Item) MaxRedeemable() Money { return it.spend.Apply(it.cost) }

// Paid is what is paid out of pocket for a realized item.
func (it Item) Paid() Money { return it.cost.Sub(it.applied) }

// Earn returns a copy of the item realized as Earn.
func (it Item) Earn() Item {
	it.decision = Earn
	it.applied = Money{cur: it.cost.cur}
	return it
}

// Spend returns a copy of the item realized as Spend, redeeming 'applied'.
// The amount is the caller's choice and is not checked here.
func (it Item) Spend(applied Money) Item {
	it.decision = Spend
	it.applied = applied
	return it
}
