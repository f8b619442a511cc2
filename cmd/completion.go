package cmd

import (
	"github.com/etnz/cashback/basket"
	"github.com/etnz/cashback/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	rate := predict.Set{"20/100", "10/100", "5/100", "1/100"}
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"optimize": {
				Flags: map[string]complete.Predictor{
					"json": predict.Nothing,
					"q":    predict.Set{"$.finalCost", "$.eCashback", "$.initialCost", "$.items[*].name"},
				},
			},
			"add": {
				Flags: map[string]complete.Predictor{
					"n":     predict.Something,
					"c":     predict.Something,
					"earn":  rate,
					"spend": rate,
				},
			},
			"rm":   {Args: complete.PredictFunc(itemNames)},
			"list": {},
			"rates": {
				Flags: map[string]complete.Predictor{
					"earn":     rate,
					"spend":    rate,
					"currency": predict.Set{"SGD", "USD", "EUR", "MYR"},
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"items":  predict.Files("*.jsonl"),
			"v":      predict.Nothing,
			"plain":  predict.Nothing,
		},
	}
}

// itemNames predicts the names of the items in the default items file.
func itemNames(prefix string) []string {
	specs, err := basket.LoadItems(*itemsFile)
	if err != nil {
		return nil
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return names
}
