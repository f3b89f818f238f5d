// Package renderer draws the diagram editor onto a terminal backend.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer (frame composition)     │
//	├─────────────────────────────────────────┤
//	│  Viewport │ Theme │ line rasterizer     │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Each frame is drawn back to front: links, the hover highlight, the link
// being drawn, the lasso path, nodes, then the status line. The renderer
// only reads editor state through the Scene interface.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	view := viewport.NewViewport(term.Size())
//	r := renderer.New(term, view, renderer.DefaultOptions())
//	r.Render(editor)
package renderer
