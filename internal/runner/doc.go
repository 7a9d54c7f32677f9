// Package runner coordinates message exchange with the Anthropic Messages API
// and dispatches calls to the financial validation tools.
//
// Invariant:
//   - tool_use and the corresponding tool_result stay adjacent within a turn,
//     so the model always sees a validation outcome right after requesting it.
//
// Flow:
//
//	user(answer) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package runner
