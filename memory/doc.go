// Package memory persists collection sessions across restarts.
//
// Persistence model:
//   - Conversation: role + text only. Tool blocks are transient.
//   - Financial state: the finalized JSON object the collector prints at the
//     end of a session is captured verbatim to financial_state.json.
package memory
