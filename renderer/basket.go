package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cashback"
	"github.com/etnz/cashback/basket"
	md "github.com/nao1215/markdown"
)

// BasketMarkdown renders the default rates and the items with the rates they
// will be optimized with.
func BasketMarkdown(cfg basket.Config, specs []basket.ItemSpec) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Basket")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Default", "Rate"},
		Rows: [][]string{
			{"Currency", cfg.Currency},
			{"Earn", cfg.Earn.String()},
			{"Spend", cfg.Spend.String()},
		},
	})

	doc.H2("Items")
	if len(specs) == 0 {
		doc.PlainText("No items yet, add one with `cbo add`.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Cost", "Earn", "Spend"},
	}
	for _, s := range specs {
		table.Rows = append(table.Rows, []string{
			s.Name,
			cashback.M(s.Cost, cfg.Currency).String(),
			rateCell(s.EarnRate(cfg), s.Earn == nil),
			rateCell(s.SpendRate(cfg), s.Spend == nil),
		})
	}
	doc.Table(table)

	return doc.String()
}

func rateCell(r cashback.Rate, inherited bool) string {
	if inherited {
		return fmt.Sprintf("%s %s", r, md.Italic("(default)"))
	}
	return r.String()
}
