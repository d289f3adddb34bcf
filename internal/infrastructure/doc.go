// Package infrastructure wires process-level concerns: the structured
// logger and the run identifier every log record is correlated with.
package infrastructure
