// Package ledger holds the pure arithmetic over an organization's transactions:
// the cash-flow summary, the one-month burn window, range selection for
// exports and amount rounding for ingestion. Nothing here touches a store.
package ledger
