// Package diagram holds the editor's application entities: nodes, directed
// links between them, the link being drawn, and the lasso selection path.
//
// Derived state is recomputed explicitly. After mutating node positions or
// the lasso path, callers run Model.RecomputeMarks to refresh which links
// the lasso crosses; nothing recomputes behind the caller's back.
package diagram
