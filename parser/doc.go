// SPDX-License-Identifier: MIT

// Package parser reads the textual preference format.
//
//	3            ← group size
//	Alice        ← chooser (no indentation)
//	    Bob      ← Alice's first choice (indented with spaces or tabs)
//	    Carol
//	Bob
//	\tAlice
//	Carol
//
// Blank lines are ignored anywhere. Names are opaque strings; surrounding
// whitespace and a trailing carriage return are stripped. Resolving partner
// names to participants is left to prefs.Build, which rejects unknown names.
package parser
