// Package renderer turns plans and baskets into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/cashback"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders an optimized plan: the items in the order they should
// be bought, then the totals.
func PlanMarkdown(l cashback.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cashback Plan")

	if l.Len() == 0 {
		doc.PlainText("No items to optimize.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Item", "Cost", "Decision", "Cashback", "Paid"},
	}
	for i, it := range l.Items() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			it.Name(),
			it.Cost().String(),
			decision(it.Decision()),
			cashbackMove(it),
			it.Paid().String(),
		})
	}
	doc.Table(table)

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Final Cost"),
			md.Bold(l.FinalCost().String()),
		},
		Rows: [][]string{
			{"Initial Cost", l.InitialCost().String()},
			{"Cashback Redeemed", l.Redeemed().String()},
			{"Savings", l.Savings().String()},
			{"Cashback Left", l.Cashback().String()},
		},
	})

	return doc.String()
}

func decision(d cashback.Decision) string {
	switch d {
	case cashback.Earn:
		return "Earn"
	case cashback.Spend:
		return "Spend"
	}
	return ""
}

// cashbackMove is the cashback earned (+) or redeemed (-) by a realized item.
func cashbackMove(it cashback.Item) string {
	switch it.Decision() {
	case cashback.Earn:
		return fmt.Sprintf("+%s", it.CashbackEarned())
	case cashback.Spend:
		return fmt.Sprintf("-%s", it.CashbackApplied())
	}
	return ""
}
