// Package script seeds diagrams from Lua scene scripts.
//
// Scenes run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. A scene calls three functions:
//
//	node(label, x, y)  -- add a node, returns label
//	link(from, to)     -- connect two nodes by label
//	clear()            -- discard everything declared so far and empty the model
//
// A scene is applied to the model only if the whole script succeeds.
//
// The default scene reproduces the classic three-node example:
//
//	node("1", 50, 50)
//	node("2", 150, 50)
//	node("3", 50, 150)
//	link("1", "2")
//	link("2", "3")
package script
