// Package model ties symbolic right-hand sides to a named compartmental
// model: declared states, declared parameters, and one ODE per state.
//
// 🚀 What does model do?
//
//	  • validates that every symbol in the equations is a declared
//	    state or parameter — typos surface at build time, not as
//	    silently-unbound symbols during analysis
//	  • exposes the transition decomposition (Transitions, BirthDeath)
//	    and the Jacobian of the system
//	  • evaluates the right-hand side numerically for given state and
//	    parameter values
//	  • loads model definitions from YAML documents, the interchange
//	    format used by the examples and the test fixtures
//
// ⚙️ Usage:
//
//	m, err := model.New([]string{"S", "I", "R"}, []string{"beta", "gamma"})
//	err = m.SetODE("-beta*S*I", "beta*S*I - gamma*I", "gamma*I")
//	res, err := m.Transitions()
//
// or, from YAML:
//
//	def, err := model.ParseDefinition(data)
//	m, err := def.Build()
package model
