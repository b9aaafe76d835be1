// Package render turns a decomposed compartmental model into Graphviz
// DOT documents.
//
// 🚀 What does render do?
//
//	  • TransitionGraph draws one node per state and one labeled edge
//	    per transition, left to right; birth/death flows attach to
//	    unlabeled point nodes on the system boundary
//	  • Prettify rewrites conventional parameter names (beta, gamma,
//	    mu, …) into their Greek glyphs for the edge labels
//
// The output is a *dot.Graph; call String on it and feed the result to
// any Graphviz toolchain.
package render
