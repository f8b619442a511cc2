package cashback

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MaxItems is the largest number of items Optimize accepts. The search is
// exponential in the number of distinct items.
const MaxItems = 16

var (
	// ErrTooManyItems is returned when more than MaxItems items are optimized.
	ErrTooManyItems = fmt.Errorf("too many items, at most %d are supported", MaxItems)
	// ErrCurrencyMismatch is returned when items are not all in the same currency.
	ErrCurrencyMismatch = errors.New("items must all be in the same currency")
	// ErrAmountRange is returned when the amounts are too large or too precise
	// to be optimized exactly.
	ErrAmountRange = errors.New("amounts exceed the supported range")
)

// maxUnits bounds any total, in minor units, handled by the search.
var maxUnits = decimal.NewFromInt(math.MaxInt64 / 4)

// Optimize finds the plan with the lowest final cost for 'items'. Among plans
// of equal final cost, the one with the most cashback left wins.
//
// Every ordering of the items and both decisions for each item are
// considered.
func Optimize(items []Item) (Ledger, error) {
	o, err := NewOptimizer(items)
	if err != nil {
		return Ledger{}, err
	}
	return o.Run(), nil
}

// Optimizer holds the state of a single search. It is not safe for
// concurrent use.
//
// Amounts are converted once to integer minor units (see scale) so that the
// search itself does integer arithmetic only.
type Optimizer struct {
	items  []Item
	scale  int32    // decimal places of the minor unit.
	cost   []int64  // per item, in minor units.
	earned []int64  // cashback earned by each item.
	cap    []int64  // most cashback each item redeems.
	twins  []uint32 // earlier items identical to each item.
	all    uint32   // bitmask with one bit per item.
	memo   map[state]outcome
}

// state is what fully determines the best completion of a partial plan: the
// items still to realize and the cashback available. The order in which the
// realized items were chosen does not matter.
type state struct {
	remaining uint32
	balance   int64
}

// outcome is the best completion from a state.
type outcome struct {
	cost     int64 // paid for the remaining items.
	cashback int64 // balance once they are all realized.
	next     int8  // item to realize next, -1 when done.
	decision Decision
}

// better reports whether a beats b: lower cost first, then more cashback left.
func (a outcome) better(b outcome) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.cashback > b.cashback
}

// NewOptimizer validates the items and prepares a search.
func NewOptimizer(items []Item) (*Optimizer, error) {
	if len(items) > MaxItems {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyItems, len(items))
	}
	currency := ""
	for _, it := range items {
		c := it.Cost().Currency()
		if c == "" {
			continue
		}
		if currency != "" && c != currency {
			return nil, fmt.Errorf("%w: %q and %q", ErrCurrencyMismatch, currency, c)
		}
		currency = c
	}

	o := &Optimizer{
		items:  items,
		cost:   make([]int64, len(items)),
		earned: make([]int64, len(items)),
		cap:    make([]int64, len(items)),
		twins:  make([]uint32, len(items)),
		all:    uint32(1)<<len(items) - 1,
		memo:   make(map[state]outcome),
	}

	var totalCost, totalEarned, totalCap decimal.Decimal
	for _, it := range items {
		for _, d := range []decimal.Decimal{it.Cost().value, it.CashbackEarned().value, it.MaxRedeemable().value} {
			if places := -d.Exponent(); places > o.scale {
				o.scale = places
			}
		}
		totalCost = totalCost.Add(it.Cost().value)
		totalEarned = totalEarned.Add(it.CashbackEarned().value)
		totalCap = totalCap.Add(it.MaxRedeemable().value)
	}
	for _, total := range []decimal.Decimal{totalCost, totalEarned, totalCap} {
		if total.Shift(o.scale).GreaterThan(maxUnits) {
			return nil, fmt.Errorf("%w: %s at %d decimal places", ErrAmountRange, total, o.scale)
		}
	}

	for i, it := range items {
		o.cost[i] = o.units(it.Cost())
		o.earned[i] = o.units(it.CashbackEarned())
		o.cap[i] = o.units(it.MaxRedeemable())
		for j := 0; j < i; j++ {
			if o.cost[j] == o.cost[i] && o.earned[j] == o.earned[i] && o.cap[j] == o.cap[i] {
				o.twins[i] |= 1 << j
			}
		}
	}
	return o, nil
}

// units converts m to minor units, exactly.
func (o *Optimizer) units(m Money) int64 { return m.value.Shift(o.scale).IntPart() }

// Run executes the search and returns the optimal plan. Running it twice
// returns the same plan.
func (o *Optimizer) Run() Ledger {
	var l Ledger
	var balance int64
	remaining := o.all
	for remaining != 0 {
		out := o.best(remaining, balance)
		i := int(out.next)
		l = l.Apply(o.items[i], out.decision)
		if out.decision == Spend {
			balance -= min(o.cap[i], balance)
		} else {
			balance += o.earned[i]
		}
		remaining &^= 1 << i
	}
	return l
}

// States returns the number of distinct states explored so far.
func (o *Optimizer) States() int { return len(o.memo) }

func (o *Optimizer) best(remaining uint32, balance int64) outcome {
	if remaining == 0 {
		return outcome{cashback: balance, next: -1}
	}
	key := state{remaining: remaining, balance: balance}
	if out, ok := o.memo[key]; ok {
		return out
	}

	// A lone item with nothing realized before has no cashback to redeem.
	loneFirst := remaining == o.all && len(o.items) == 1

	var res outcome
	found := false
	for i := range o.items {
		bit := uint32(1) << i
		if remaining&bit == 0 {
			continue
		}
		// An identical item still remains with a lower index: realizing this
		// one instead leads to the same completions.
		if remaining&o.twins[i] != 0 {
			continue
		}
		rest := remaining &^ bit

		if !loneFirst {
			redeemed := min(o.cap[i], balance)
			sub := o.best(rest, balance-redeemed)
			cand := outcome{
				cost:     o.cost[i] - redeemed + sub.cost,
				cashback: sub.cashback,
				next:     int8(i),
				decision: Spend,
			}
			if !found || cand.better(res) {
				res, found = cand, true
			}
		}

		sub := o.best(rest, balance+o.earned[i])
		cand := outcome{
			cost:     o.cost[i] + sub.cost,
			cashback: sub.cashback,
			next:     int8(i),
			decision: Earn,
		}
		if !found || cand.better(res) {
			res, found = cand, true
		}
	}

	o.memo[key] = res
	return res
}
