// Package validate applies per-field domain rules on top of the parse
// package and wraps outcomes in the tool envelope.
//
// Includes:
//   - A rule registry mapping every known financial field to how its raw
//     string is parsed and constrained.
//   - Validator.Field: single-field validation, fail on first problem.
//   - Validator.All: the batch validator. It never stops early, so the
//     conversational layer can ask the user to fix every broken field in
//     one turn.
package validate
