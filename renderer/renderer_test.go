package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cashback"
	"github.com/etnz/cashback/basket"
	"github.com/shopspring/decimal"
)

func item(name string, cost int) cashback.Item {
	r := cashback.NewRate(20, 100)
	return cashback.MustNewItem(name, cashback.M(cost, "SGD"), r, r)
}

func TestPlanMarkdown(t *testing.T) {
	l, err := cashback.Optimize([]cashback.Item{item("Item 1", 100), item("Item 2", 300)})
	if err != nil {
		t.Fatalf("Optimize() unexpected error: %v", err)
	}
	got := PlanMarkdown(l)

	for _, want := range []string{
		"# Cashback Plan",
		"Item 2",
		"Earn",
		"+S$60.00",
		"Spend",
		"-S$20.00",
		"S$80.00", // paid for Item 1
		"## Summary",
		"S$380.00",
		"S$400.00",
		"S$40.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PlanMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Item 2") > strings.Index(got, "Item 1") {
		t.Errorf("PlanMarkdown() lists Item 1 before Item 2:\n%s", got)
	}
}

func TestPlanMarkdown_Empty(t *testing.T) {
	got := PlanMarkdown(cashback.Ledger{})
	if !strings.Contains(got, "No items to optimize.") {
		t.Errorf("PlanMarkdown() =\n%s", got)
	}
	if strings.Contains(got, "Summary") {
		t.Errorf("PlanMarkdown() renders a summary without items:\n%s", got)
	}
}

func TestBasketMarkdown(t *testing.T) {
	earn := cashback.NewRate(5, 10)
	specs := []basket.ItemSpec{
		{Name: "amp", Cost: decimal.NewFromInt(300)},
		{Name: "cable", Cost: decimal.NewFromInt(15), Earn: &earn},
	}
	got := BasketMarkdown(basket.DefaultConfig(), specs)

	for _, want := range []string{
		"# Basket",
		"SGD",
		"amp",
		"S$300.00",
		"cable",
		"5/10",
		"20/100",
		"(default)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BasketMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestBasketMarkdown_Empty(t *testing.T) {
	got := BasketMarkdown(basket.DefaultConfig(), nil)
	if !strings.Contains(got, "No items yet") {
		t.Errorf("BasketMarkdown() =\n%s", got)
	}
}
