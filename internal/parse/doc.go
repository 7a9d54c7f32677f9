// Package parse converts loosely formatted financial text into normalized
// numeric values.
//
// Includes:
//   - Parser.Number: single amount with currency symbols, commas, k/M suffixes.
//   - Parser.ItemList: labeled or bare amount lists (JSON object, label:amount
//     pairs, or delimited numbers) with a round-then-sum total.
//   - Parser.YesNo: strict boolean flags.
//   - Invariants: all functions are pure; failures are coded *Error values,
//     never panics.
package parse
