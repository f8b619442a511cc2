package basket

import (
	"errors"
	"testing"

	"github.com/etnz/cashback"
	"github.com/shopspring/decimal"
)

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	specs := []ItemSpec{
		spec("Item 1", 100),
		{Name: "Item 2", Cost: decimal.NewFromInt(300), Earn: rate(50, 100), Spend: rate(1, 10)},
	}

	items, err := Resolve(cfg, specs)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Resolve() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.Name() != "Item 1" || first.Cost().Currency() != "SGD" {
		t.Errorf("items[0] = %q in %q", first.Name(), first.Cost().Currency())
	}
	if !first.EarnRate().Equal(cfg.Earn) || !first.SpendRate().Equal(cfg.Spend) {
		t.Errorf("items[0] rates = %v, %v want the defaults", first.EarnRate(), first.SpendRate())
	}

	second := items[1]
	if !second.EarnRate().Equal(cashback.NewRate(50, 100)) || !second.SpendRate().Equal(cashback.NewRate(1, 10)) {
		t.Errorf("items[1] rates = %v, %v want 50/100, 1/10", second.EarnRate(), second.SpendRate())
	}
	if got := second.CashbackEarned(); !got.Equal(cashback.M(150, "SGD")) {
		t.Errorf("items[1] earns %v, want 150", got)
	}
}

func TestResolve_FailsFast(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Earn = cashback.NewRate(20, 0)
	_, err := Resolve(cfg, []ItemSpec{spec("a", 100)})
	if !errors.Is(err, cashback.ErrZeroBase) {
		t.Errorf("Resolve() error = %v, want %v", err, cashback.ErrZeroBase)
	}
}

func TestResolve_Optimize(t *testing.T) {
	items, err := Resolve(DefaultConfig(), []ItemSpec{spec("Item 1", 100), spec("Item 2", 300)})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	l, err := cashback.Optimize(items)
	if err != nil {
		t.Fatalf("Optimize() unexpected error: %v", err)
	}
	if !l.FinalCost().Equal(cashback.M(380, "SGD")) || !l.Cashback().Equal(cashback.M(40, "SGD")) {
		t.Errorf("Optimize() = %v/%v, want 380/40", l.FinalCost(), l.Cashback())
	}
}
