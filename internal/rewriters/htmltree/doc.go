// Package htmltree provides a driven.Rewriter that locates markable
// timestamp elements in an HTML tree and replaces their visible text.
// It handles both full documents and body fragments.
package htmltree
