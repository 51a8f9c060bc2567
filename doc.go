// Package finance is the transaction-processing engine of a personal-finance
// ledger. It turns raw ledger collections into financial facts (balances,
// category totals, budget status, forecasts) with pure functions over
// immutable values.
//
// The main parts are:
//   - Domain model: Account, Category, Transaction, Budget and Event values,
//     gathered in a Ledger value whose methods return new Ledgers.
//   - Filters and streams: Predicate builders and lazy iter.Seq sequences,
//     including a running category tally (RankStream) and a final top-k
//     ranking (TopKFinal).
//   - Rollups: a category Forest walked depth-first with cycle detection to
//     flatten it and to sum expenses including descendants.
//   - Validation: checks composed with fp.Result into one verdict per
//     candidate transaction. Faults are returned as data, never panicked.
//   - Event bus: reducers subscribed by event name, each computing its own
//     state delta from a published event.
//   - Forecasts: memoized spend estimates keyed by a canonical Snapshot of the
//     transaction log, in a bounded LRU cache.
//
// Reading and writing ledger documents (DecodeLedger, EncodeLedger) works on
// io.Reader and io.Writer; files are the business of the `fin` command.
package finance
