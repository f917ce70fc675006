// Package app is the application layer — the only component that references
// every pipeline stage. It wires Loader → Selector → Tokenizer → Scorer →
// Aggregator in order and assembles the run result.
package app
