// Package scene is a small host for the flex layout engine: boxes with
// specified geometry, arranged in a tree and laid out by a flex.Tree.
//
// Scenes are either built in code:
//
//	s := scene.New()
//	s.Root.SetSize(scene.Fixed(200), scene.Fixed(100))
//	a := s.NewBox("a")
//	a.SetSize(scene.Fixed(50), scene.Auto())
//	s.Root.AddChild(a)
//	s.SetFlex(s.Root, true)
//	s.Layout()
//
// or loaded from YAML, JSON or TOML documents with Load and Build.
package scene
