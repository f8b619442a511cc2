package basket

import (
	"fmt"

	"github.com/etnz/cashback"
)

// EarnRate returns the earn rate of 's', inherited from 'cfg' when unset.
func (s ItemSpec) EarnRate(cfg Config) cashback.Rate {
	if s.Earn != nil {
		return *s.Earn
	}
	return cfg.Earn
}

// SpendRate returns the spend rate of 's', inherited from 'cfg' when unset.
func (s ItemSpec) SpendRate(cfg Config) cashback.Rate {
	if s.Spend != nil {
		return *s.Spend
	}
	return cfg.Spend
}

// Resolve merges the default rates of 'cfg' into 'specs' and builds the
// items to optimize, in the same order.
func Resolve(cfg Config, specs []ItemSpec) ([]cashback.Item, error) {
	items := make([]cashback.Item, 0, len(specs))
	for i, s := range specs {
		it, err := cashback.NewItem(s.Name, cashback.M(s.Cost, cfg.Currency), s.EarnRate(cfg), s.SpendRate(cfg))
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i+1, err)
		}
		items = append(items, it)
	}
	return items, nil
}
