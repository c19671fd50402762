package compat

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DotOptions configures adjacency graph rendering.
type DotOptions struct {
	// Detailed includes the full variant mask keys on edges.
	// When false, edges only carry the shared-key count.
	Detailed bool
}

// ToDOT converts the table to a Graphviz DOT graph of the palette's
// interchange structure: one node per tile with a derivable mask, and an
// edge between two tiles whenever some orientation of one produces exactly
// the same connection mask as some orientation of the other. Such tiles are
// interchangeable at that mask, which is what the reverse index answers
// during placement.
//
// Tiles without a parseable signature are omitted. Render the result with
// [RenderSVG] or any Graphviz tool.
func (t *Table) ToDOT(opts DotOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph Palette {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [color=grey50, fontsize=10];\n\n")

	for i := range t.identities {
		base, ok := t.BaseMask(i)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s\n%s", tileLabel(t.identities[i]), base.Key())
		fmt.Fprintf(&buf, "  t%d [label=%q];\n", i, label)
	}
	buf.WriteString("\n")

	// keysOf[i] is the set of variant mask keys of tile i.
	keysOf := make([]map[string]bool, len(t.identities))
	for i := range t.identities {
		if t.variants[i] == nil {
			continue
		}
		keys := make(map[string]bool, NumVariants)
		for _, m := range t.variants[i] {
			keys[m.Key()] = true
		}
		keysOf[i] = keys
	}

	for a := range t.identities {
		if keysOf[a] == nil {
			continue
		}
		for b := a + 1; b < len(t.identities); b++ {
			if keysOf[b] == nil {
				continue
			}
			shared := sharedKeys(keysOf[a], keysOf[b])
			if len(shared) == 0 {
				continue
			}
			label := fmt.Sprintf("%d", len(shared))
			if opts.Detailed {
				label = strings.Join(shared, "\n")
			}
			fmt.Fprintf(&buf, "  t%d -- t%d [label=%q];\n", a, b, label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func sharedKeys(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// tileLabel shortens an identity to its base name without the signature
// suffix and extension.
func tileLabel(identity string) string {
	name := path.Base(identity)
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	trimmed := strings.TrimSuffix(strings.TrimRight(name, "01"), "_")
	if trimmed == "" {
		return name
	}
	return trimmed
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
