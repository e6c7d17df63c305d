package flamegraph

import (
	"sort"
	"strings"
)

// RootName is the name of the frame spanning every stack.
const RootName = "all"

// Frame is one box of the graph. Start and Count are in sample units.
type Frame struct {
	Name  string
	Depth int
	Start uint64
	Count uint64
}

type node struct {
	name     string
	total    uint64
	children map[string]*node
}

func (n *node) child(name string) *node {
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c, ok := n.children[name]
	if !ok {
		c = &node{name: name}
		n.children[name] = c
	}
	return c
}

// Layout merges stacks sharing a prefix and returns frames in depth-first
// order, siblings sorted by name. The root frame comes first.
func (c *Collector) Layout() []Frame {
	root := &node{name: RootName}
	for path, count := range c.counts {
		root.total += count
		n := root
		for _, name := range strings.Split(path, Separator) {
			n = n.child(name)
			n.total += count
		}
	}

	var frames []Frame
	var walk func(n *node, depth int, start uint64)
	walk = func(n *node, depth int, start uint64) {
		frames = append(frames, Frame{Name: n.name, Depth: depth, Start: start, Count: n.total})

		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		offset := start
		for _, name := range names {
			child := n.children[name]
			walk(child, depth+1, offset)
			offset += child.total
		}
	}
	walk(root, 0, 0)

	return frames
}

func maxDepth(frames []Frame) int {
	depth := 0
	for _, f := range frames {
		if f.Depth > depth {
			depth = f.Depth
		}
	}
	return depth
}
