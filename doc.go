// Package flex provides a flexbox layout engine for host scene graphs.
//
// Users import this single package for the complete public API: the
// Subject interface a host node implements, the Tree that tracks layout
// state, container and item settings, and the geometry types results are
// reported in.
//
// A typical frame:
//
//	tree := flex.NewTree()
//	tree.SetFlexEnabled(root, true)
//	tree.Container(root).SetJustifyContent(flex.JustifySpaceBetween)
//	tree.ChangedChildren(root)
//	...
//	tree.LayoutFlexTree(root) // when root.TriggerLayout fired
package flex
