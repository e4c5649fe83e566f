// Package layout implements a flexbox layout engine for host scene graphs.
//
// It supports row/column directions (normal and reversed), wrapping,
// grow/shrink distribution with min/max constraints, align-items/align-self,
// align-content, justify-content, padding and margin. Types are re-exported
// through the root flex package for public consumption.
//
// The engine never owns host nodes. A host node participates through the
// [Subject] interface, and a [Tree] keeps one [Node] per participating
// subject. Hosts flag changes with [Tree.ForceLayout], [Tree.ChangedContents]
// and [Tree.ChangedChildren], then call [Tree.LayoutFlexTree] once per frame
// on the subject whose TriggerLayout hook fired. Resolved rectangles are
// pushed back through [Subject.SetLayoutCoords] and
// [Subject.SetLayoutDimensions], in the coordinate space of the parent.
package layout
