// Package errkit implements the taxonomic error model: 18 variants, each
// carrying a captured stack trace, classified into a total Category, capable
// of non-mutating context attachment (AddContext always wraps in a new
// WithRichContext value), structural cloning with non-cloneable-source
// reduction, and a stable Display form per variant.
package errkit
