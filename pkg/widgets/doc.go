// Package widgets provides the interactive component specializations built
// on top of the core substrate: Clickable, the pointer/keyboard activation
// layer, Button, its standard interactive narrowing, and Spacer, a passive
// layout filler.
//
// All widgets register themselves with the component registry in init, so
// importing this package is enough to make them available to declarative
// child configuration:
//
//	import _ "github.com/go-reel/reel/pkg/widgets"
//
//	root, err := core.NewStandalone(core.Options{
//		"children": []any{
//			core.Options{"name": "playButton", "componentClass": "Button"},
//		},
//	})
package widgets
