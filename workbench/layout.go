// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workbench

type PaneID uint32

type SplitID uint32

// Axis is the orientation of the line dividing a split
type Axis uint8

const (
	// AxisHorizontal stacks the two halves on top of each other
	AxisHorizontal Axis = iota
	// AxisVertical places the two halves side by side
	AxisVertical
)

type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// node is a leaf holding a pane when split is zero, otherwise a split with two children.
// The first child is the top or left half
type node struct {
	pane  PaneID
	split SplitID
	axis  Axis
	ratio float64
	a     *node
	b     *node
}

func (n *node) isLeaf() bool {
	return n.split == 0
}

// findPane returns the leaf for id and its parent, which is nil for the root
func (n *node) findPane(id PaneID, parent *node) (*node, *node) {
	if n.isLeaf() {
		if n.pane == id {
			return n, parent
		}
		return nil, nil
	}
	if leaf, p := n.a.findPane(id, n); leaf != nil {
		return leaf, p
	}
	return n.b.findPane(id, n)
}

func (n *node) findSplit(id SplitID) *node {
	if n.isLeaf() {
		return nil
	}
	if n.split == id {
		return n
	}
	if found := n.a.findSplit(id); found != nil {
		return found
	}
	return n.b.findSplit(id)
}

func (n *node) firstPane() PaneID {
	if n.isLeaf() {
		return n.pane
	}
	return n.a.firstPane()
}

// panes lists the leaves from top left to bottom right
func (n *node) panes() []PaneID {
	if n.isLeaf() {
		return []PaneID{n.pane}
	}
	return append(n.a.panes(), n.b.panes()...)
}

func (n *node) regions(bounds Rect, ret map[PaneID]Rect) {
	if n.isLeaf() {
		ret[n.pane] = bounds
		return
	}
	first, second := bounds, bounds
	switch n.axis {
	case AxisHorizontal:
		first.Height = bounds.Height * n.ratio
		second.Y = bounds.Y + first.Height
		second.Height = bounds.Height - first.Height
	case AxisVertical:
		first.Width = bounds.Width * n.ratio
		second.X = bounds.X + first.Width
		second.Width = bounds.Width - first.Width
	}
	n.a.regions(first, ret)
	n.b.regions(second, ret)
}
