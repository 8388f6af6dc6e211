// Package render turns a compiler log into styled terminal text.
//
// Each non-empty log line becomes one Block:
//
//	contracts/Token.sol:12:5: Warning: Unused variable. Remove it.
//
// renders as
//
//	contracts/<bold blue>Token.sol<reset>:<purple>12:5<reset>
//	<bold orange>Warning:<reset>
//	Unused variable.
//	Remove it.
//
// Errors use red for the marker, caret pointer lines are wrapped in red and
// everything else is passed through. An empty log renders a bold "Success!".
package render
