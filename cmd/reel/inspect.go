package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-reel/reel/pkg/config"
	"github.com/go-reel/reel/pkg/core"
	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/sched"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <config.yaml>",
		Short: "Instantiate a component tree once and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderConfig(cmd.OutOrStdout(), args[0])
		},
	}
}

// renderConfig builds the configured tree on a private loop, marks it
// ready, and prints the resulting element hierarchy.
func renderConfig(w io.Writer, path string) error {
	opts, err := config.Load(path)
	if err != nil {
		return err
	}
	palette, err := config.Skin(opts)
	if err != nil {
		return err
	}
	if palette != nil {
		opts["skin"] = palette
		opts["playerOptions"] = core.Options{"skin": palette}
	}

	loop := sched.New()
	opts["loop"] = loop

	root, err := core.NewStandalone(opts)
	if err != nil {
		return err
	}
	defer root.Dispose()

	root.TriggerReady()
	loop.Pump()

	renderComponent(w, root, 0)
	return nil
}

func renderComponent(w io.Writer, c core.Component, depth int) {
	indent := strings.Repeat("  ", depth)
	label := c.ID()
	if c.Name() != "" {
		label = c.Name() + " " + label
	}
	fmt.Fprintf(w, "%s%s %s\n", indent, label, renderElement(c.El()))
	for _, child := range c.Children() {
		renderComponent(w, child, depth+1)
	}
}

// renderElement formats one element as an opening-tag-like summary.
func renderElement(el *dom.Element) string {
	if el == nil {
		return "(no element)"
	}
	var b strings.Builder
	b.WriteString("<" + el.Tag())
	if class := el.ClassName(); class != "" {
		fmt.Fprintf(&b, " class=%q", class)
	}
	names := el.AttributeNames()
	sort.Strings(names)
	for _, name := range names {
		value, _ := el.Attribute(name)
		fmt.Fprintf(&b, " %s=%q", name, value)
	}
	if text := elementText(el); text != "" {
		fmt.Fprintf(&b, " text=%q", text)
	}
	b.WriteString(">")
	return b.String()
}

// elementText collects the element's own text plus text of sub-elements
// that are not component-owned, e.g. a button's label span.
func elementText(el *dom.Element) string {
	parts := make([]string, 0, 1)
	if el.Text() != "" {
		parts = append(parts, el.Text())
	}
	for _, child := range el.Children() {
		if child.ID() != "" {
			continue
		}
		if text := elementText(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
