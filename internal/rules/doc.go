// Package rules holds the spacing rule catalog, the policy table keyed by
// (token kind, role) and the evaluator that compares each token's
// surrounding whitespace against its policy.
//
// Every rule owns a disjoint set of table entries, so one token side is
// judged by at most one rule. Two rules may still flag the same whitespace
// run from opposite sides (a '>' followed by a space and a ','); the fix
// planner merges such edits.
package rules
