package cashback

import "github.com/shopspring/decimal"

// SGD is a helper for test to create singapore dollars from const
func SGD(v int) Money { return M(v, "SGD") }

// uniform is the rate used by most tests: 20 for every 100.
var uniform = NewRate(20, 100)

// item is a helper for test to create an item with uniform rates.
func item(name string, cost int) Item {
	return MustNewItem(name, SGD(cost), uniform, uniform)
}

// dec is a helper for test to create a decimal from const
func dec(v int) decimal.Decimal { return decimal.NewFromInt(int64(v)) }
