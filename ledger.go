package cashback

// Ledger is a partial or complete plan: the items realized so far, in
// order, with the running cost and cashback balance.
//
// A Ledger is a value. ApplyEarn and ApplySpend return a new Ledger that
// shares the already realized items with its parent, so sibling branches of
// a search never see each other's items.
//
// The zero Ledger is empty and ready to use.
type Ledger struct {
	last     *entry
	n        int
	cashback Money // available cashback, never negative.
	cost     Money // running total cost.
}

// entry is a node of the persistent list of realized items.
type entry struct {
	item Item
	prev *entry
}

func (l Ledger) append(it Item) *entry { return &entry{item: it, prev: l.last} }

// ApplySpend realizes 'it' as Spend, redeeming as much cashback as both the
// balance and the item allow.
func (l Ledger) ApplySpend(it Item) Ledger {
	redeemed := it.MaxRedeemable().Min(l.cashback)
	return Ledger{
		last:     l.append(it.Spend(redeemed)),
		n:        l.n + 1,
		cashback: l.cashback.Sub(redeemed),
		cost:     l.cost.Add(it.Cost()).Sub(redeemed),
	}
}

// ApplyEarn realizes 'it' as Earn, accruing its cashback.
func (l Ledger) ApplyEarn(it Item) Ledger {
	return Ledger{
		last:     l.append(it.Earn()),
		n:        l.n + 1,
		cashback: l.cashback.Add(it.CashbackEarned()),
		cost:     l.cost.Add(it.Cost()),
	}
}

// Apply realizes 'it' with decision 'd'.
func (l Ledger) Apply(it Item, d Decision) Ledger {
	if d == Spend {
		return l.ApplySpend(it)
	}
	return l.ApplyEarn(it)
}

// Len returns the number of realized items.
func (l Ledger) Len() int { return l.n }

// Items returns the realized items in realization order.
func (l Ledger) Items() []Item {
	items := make([]Item, l.n)
	i := l.n
	for e := l.last; e != nil; e = e.prev {
		i--
		items[i] = e.item
	}
	return items
}

// InitialCost is the sum of the realized items' costs, before any cashback.
func (l Ledger) InitialCost() Money {
	var total Money
	for e := l.last; e != nil; e = e.prev {
		total = total.Add(e.item.Cost())
	}
	return total
}

// FinalCost is what is paid out of pocket.
func (l Ledger) FinalCost() Money { return l.cost }

// Cashback is the cashback balance left.
func (l Ledger) Cashback() Money { return l.cashback }

// Redeemed is the total cashback applied on Spend items.
func (l Ledger) Redeemed() Money {
	var total Money
	for e := l.last; e != nil; e = e.prev {
		total = total.Add(e.item.CashbackApplied())
	}
	return total
}

// Savings is how much cheaper the plan is than paying every item in full.
func (l Ledger) Savings() Money { return l.InitialCost().Sub(l.cost) }

// Currency returns the currency of the realized items, "" when none of them
// has one.
func (l Ledger) Currency() string {
	var c Money
	for e := l.last; e != nil; e = e.prev {
		c.cur = cur(c, e.item.Cost())
	}
	return c.cur
}
