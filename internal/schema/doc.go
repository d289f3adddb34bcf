// Package schema defines the canonical output schema for combined purchase
// order data and the matching machinery that maps free-text labels discovered
// in source workbooks onto it.
//
// The package exposes three things:
//
// Columns: the fixed, ordered list of output column names. Every combined
// table has exactly these columns, in exactly this order.
//
// Normalize: canonicalizes a label for comparison (case folding, whitespace
// and punctuation collapsing). Idempotent.
//
// Match: resolves an arbitrary source label to a canonical column using, in
// priority order, exact normalized equality, word-set comparison, and a
// static alias table of known synonyms.
//
// All tables are immutable package-level data; Match is pure and safe for
// concurrent use.
package schema
