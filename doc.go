// Package cashback decides, for a basket of purchases, which items should
// earn loyalty cashback and which should spend it, so that the total paid
// out of pocket is as low as possible.
//
// The core functionalities include:
//   - Items: immutable purchase lines carrying a cost and their own earn and
//     spend rates. A rate is an integer-truncated rule like "20 of cashback
//     for every full 100 spent".
//   - Ledger: a plan under construction, the ordered list of realized items
//     with the running cost and cashback balance. Applying a decision returns
//     a new Ledger, never a modified one.
//   - Optimize: an exact search over every ordering of the items and every
//     earn/spend decision. It returns the plan with the lowest final cost,
//     and among those the one with the most cashback left.
//
// This package is pure computation: it does no I/O. The `cbo` command-line
// tool stores the basket and renders the plans.
package cashback
