// Package orchestrator wires the load -> parse -> extract -> scaffold pipeline
// behind a single entry point, with each stage replaceable through options.
package orchestrator
