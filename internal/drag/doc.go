// Package drag turns raw pointer movement into typed drag operations.
//
// An Operation[T] represents one pointer drag from press to release or
// cancel. It carries an immutable payload of type T, listens to the
// pointer source's move stream for as long as it is active, and publishes
// two streams of its own: OnMove, fired for every pointer move, and OnEnd,
// fired exactly once when the operation ends or is cancelled.
//
// A Behavior[T] is a named slot that holds at most one active operation
// of an interaction kind ("move node", "add link", "lasso"). Unrelated view
// code can ask a behavior whether a drag is in progress and test its
// payload without holding a reference to the operation:
//
//	moveNode := drag.NewBehavior[*diagram.Node]("move-node", hub)
//
//	op, err := moveNode.Start(node)
//	if err != nil {
//	    return err
//	}
//	op.EndOnRelease(mouse.ButtonLeft)
//	op.OnMove().Subscribe(func(ev drag.MoveEvent[*diagram.Node]) {
//	    ev.Payload.Pos = toLocal(ev.Position)
//	})
//
//	// elsewhere, while rendering
//	highlighted := moveNode.TestPayload(func(n *diagram.Node) bool { return n == current })
//
// # Lifecycle
//
// Operations move from Active to either Ended or Cancelled. The transition
// happens once; later calls to End or Cancel are silent no-ops. On the
// transition every pointer listener the operation installed is removed,
// then a single EndEvent is published whose Cancelled flag reports which
// of End or Cancel was called.
//
// # Re-entrant Start
//
// Starting a behavior that already holds an active operation is resolved by
// its Policy: Supersede (the default) cancels the previous operation before
// starting the new one, Reject returns ErrAlreadyActive.
//
// # Thread Safety
//
// Operations and behaviors are not safe for concurrent use. They are driven
// by pointer events delivered on the editor's event loop goroutine.
package drag
