// Package fp provides the small algebra used across the ledger engine to keep
// computations total: Option for "maybe present" values, Result for
// computations that either succeed or carry a fault, and helpers to compose
// plain functions into pipelines.
//
// Go methods cannot introduce type parameters, so the transforming operations
// (map and bind) are package functions:
//
//	name := fp.MapOption(category, func(c Category) (string, error) { return c.Name, nil })
//	ok := fp.BindResult(validated, checkBudget)
//
// None of the operations panic. A mapped function that fails turns the
// container into its empty or failed variant instead.
package fp
