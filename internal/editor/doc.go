// Package editor is the controller of the diagram editor. It owns the three
// drag behaviors (moving a node, drawing a link, lasso selection), listens
// to pointer presses and motion from a mouse.Hub, and mutates the diagram
// model in response.
//
// # Interactions
//
//   - Left press on a node drags it until the left button is released.
//   - Right press on a node draws a new link from it until the right button
//     is released. Releasing over another node connects the two.
//   - Left press while a link is being drawn drops the link on the node
//     under the pointer, or on a new node created at the pointer.
//   - Left press on empty canvas starts a lasso. Links crossed by the lasso
//     path are marked.
//   - Double click on empty canvas adds a node.
//
// # Queries
//
// Renderers ask the editor what to highlight each frame through
// NodeHighlighted, Lasso and the model itself; they never hold references
// to the in-flight drag operations.
package editor
