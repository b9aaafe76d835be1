package decompose_test

import (
	"fmt"

	"github.com/katalvlaran/epimod/decompose"
	"github.com/katalvlaran/epimod/symexpr"
)

// Decompose the classic S→I→R model into its two transitions.
func ExampleToTransitions() {
	vec := symexpr.Vector{
		symexpr.MustParse("-beta*S*I"),
		symexpr.MustParse("beta*S*I - gamma*I"),
		symexpr.MustParse("gamma*I"),
	}
	res, err := decompose.ToTransitions(vec, []string{"S", "I", "R"})
	if err != nil {
		fmt.Println("decompose:", err)
		return
	}
	fmt.Println("S->I:", res.Transitions.At(0, 1))
	fmt.Println("I->R:", res.Transitions.At(1, 2))
	// Output:
	// S->I: I*S*beta
	// I->R: I*gamma
}

// Rebuild the ODE right-hand side from a transition matrix.
func ExampleFromTransitions() {
	mat := symexpr.NewMatrix(2, 2)
	mat.Set(0, 1, symexpr.MustParse("k*A"))

	vec, err := decompose.FromTransitions(mat, nil)
	if err != nil {
		fmt.Println("rebuild:", err)
		return
	}
	fmt.Println(vec)
	// Output:
	// [-1*A*k, A*k]
}
