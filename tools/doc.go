// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Validation tools: validate_all_essential_data, validate_field,
//     parse_amount.
//   - Invariants: handlers always return a well-formed success/error
//     envelope; a Go error escapes only for malformed tool-input JSON.
package tools
