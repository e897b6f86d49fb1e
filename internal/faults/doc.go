// Package faults defines the shared error taxonomy for the checksum engine
// and its collaborators.
//
// Every failure a component can observe is tagged with exactly one sentinel
// marker so the orchestrator and the CLI can classify errors with errors.Is
// without depending on component internals. The Wrap helper attaches
// component and operation context to the message while preserving both the
// marker and the underlying cause in the error chain.
package faults
