// Package interpreter evaluates parsed Orlang programs by walking the AST.
//
// Each evaluation call receives the active environment explicitly. Blocks run
// in a fresh child of the environment they appear in, and that child is
// dropped when the block finishes, whether it completes or fails. Runtime
// failures surface as *RuntimeError values and stop the rest of the program.
package interpreter
