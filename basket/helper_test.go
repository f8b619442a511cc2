package basket

import (
	"github.com/etnz/cashback"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// decimalEqual compares decimals by value.
var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// rate is a helper for test to create a rate pointer.
func rate(perBase, base int) *cashback.Rate {
	r := cashback.NewRate(perBase, base)
	return &r
}

// spec is a helper for test to create an item spec inheriting the default rates.
func spec(name string, cost int) ItemSpec {
	return ItemSpec{Name: name, Cost: decimal.NewFromInt(int64(cost))}
}
