// Package decompose recovers the directed transition structure of a
// compartmental ODE system from its symbolic right-hand side.
//
// 🚀 What does decompose do?
//
//	Given the ODE vector of an S→I→R-style model, it:
//	  • splits every equation into its additive terms
//	  • matches terms that are exact algebraic negatives of each other —
//	    each matched pair is one state-to-state transition
//	  • classifies unmatched terms as birth/death flows across the
//	    system boundary
//	  • resolves the source and destination state of every transition,
//	    first by the single-origin heuristic, then by an exhaustive
//	    two-sided scan over all equation pairs
//	  • assembles the square transition matrix A with A[i][j] = rate of
//	    the flow from state i to state j, and the signed incidence
//	    matrix used for dependency analysis
//	  • verifies the decomposition by rebuilding the ODE from A
//	    (inbound minus outbound) and re-matching any residual
//
// The reconstruction is guaranteed to be algebraically identical to the
// input whenever ToTransitions returns without error; ambiguous
// transitions that could not be routed are surfaced in Result.Remainder
// rather than silently dropped.
//
// ⚙️ Usage:
//
//	vec := symexpr.Vector{
//	  symexpr.MustParse("-beta*S*I"),
//	  symexpr.MustParse("beta*S*I - gamma*I"),
//	  symexpr.MustParse("gamma*I"),
//	}
//	res, err := decompose.ToTransitions(vec, []string{"S", "I", "R"})
//	// res.Transitions.At(0, 1) == beta*S*I
//	// res.Transitions.At(1, 2) == gamma*I
//
// Matching is O(n²) symbolic-equality tests over the n distinct terms;
// n is bounded by model size and small in practice.
package decompose
