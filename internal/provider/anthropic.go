// Package provider constructs the Anthropic API client used by the
// collection runner.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// DefaultModel is used when no model is configured.
const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// NewAnthropicClient returns a client authenticated from the environment
// (ANTHROPIC_API_KEY).
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// Model resolves a configured model name, falling back to DefaultModel when
// name is empty.
func Model(name string) anthropic.Model {
	if name == "" {
		return DefaultModel
	}
	return anthropic.Model(name)
}
