package cashback

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes a realized item. Only the cashback relevant to its
// decision is written.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", it.name)
	w.Append("cost", it.cost)
	switch it.decision {
	case Spend:
		w.Append("decision", it.decision)
		w.Append("cashbackApplied", it.applied)
	case Earn:
		w.Append("decision", it.decision)
		w.Append("cashbackEarned", it.CashbackEarned())
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the plan: items in realization order followed by the
// totals.
func (l Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", l.Currency())
	w.Append("items", l.Items())
	w.Append("initialCost", l.InitialCost())
	w.Append("finalCost", l.FinalCost())
	w.Append("eCashback", l.Cashback())
	return w.MarshalJSON()
}

// EncodeLedger returns the indented JSON form of a plan.
func EncodeLedger(l Ledger) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}
