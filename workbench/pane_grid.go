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

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

var (
	ErrPaneNotFound  = errors.New("pane not found")
	ErrSplitNotFound = errors.New("split not found")
	ErrPanePinned    = errors.New("pane is pinned")
	ErrNoFocus       = errors.New("no pane is focused")
)

// epsilon steps just past a region edge when looking for a neighbor
const epsilon = 1e-9

type paneState struct {
	tool   Tool
	pinned bool
}

// PaneGrid arranges tools in panes created by recursively splitting the grid. A new pane
// starts with a Selector and the grid always keeps at least one pane
type PaneGrid struct {
	ctx       context.Context
	factory   ToolFactory
	logger    *slog.Logger
	panes     map[PaneID]*paneState
	root      *node
	lastPane  PaneID
	lastSplit SplitID
	focus     PaneID
	maximized PaneID
}

// NewPaneGrid creates a grid with a single focused, empty pane. ctx is passed to the tool
// factory and bounds the lifetime of tools with background work
func NewPaneGrid(ctx context.Context, opts ...PaneGridOptionFunc) *PaneGrid {
	g := &PaneGrid{
		ctx:     ctx,
		factory: NewTool,
		panes:   make(map[PaneID]*paneState),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	id := g.newPane()
	g.root = &node{pane: id}
	g.focus = id
	return g
}

func (g *PaneGrid) newPane() PaneID {
	g.lastPane++
	g.panes[g.lastPane] = &paneState{tool: NewSelector()}
	return g.lastPane
}

func (g *PaneGrid) Len() int {
	return len(g.panes)
}

// Panes returns the pane IDs in layout order
func (g *PaneGrid) Panes() []PaneID {
	return g.root.panes()
}

func (g *PaneGrid) Tool(id PaneID) (Tool, bool) {
	p, ok := g.panes[id]
	if !ok {
		return nil, false
	}
	return p.tool, true
}

// View returns the view of the tool in a pane
func (g *PaneGrid) View(id PaneID) (View, error) {
	p, ok := g.panes[id]
	if !ok {
		return View{}, fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	return p.tool.View(), nil
}

// Split divides a pane in two along axis. The new pane takes the bottom or right half,
// starts with a Selector and receives focus
func (g *PaneGrid) Split(axis Axis, id PaneID) (PaneID, SplitID, error) {
	leaf, _ := g.root.findPane(id, nil)
	if leaf == nil {
		return 0, 0, fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	newId := g.newPane()
	g.lastSplit++
	*leaf = node{
		split: g.lastSplit,
		axis:  axis,
		ratio: 0.5,
		a:     &node{pane: id},
		b:     &node{pane: newId},
	}
	g.maximized = 0
	g.focus = newId
	g.logger.Debug(
		"split pane",
		"component", "workbench",
		"pane", id,
		"new_pane", newId,
		"split", g.lastSplit,
	)
	return newId, g.lastSplit, nil
}

// SplitFocused splits the focused pane
func (g *PaneGrid) SplitFocused(axis Axis) (PaneID, SplitID, error) {
	if g.focus == 0 {
		return 0, 0, ErrNoFocus
	}
	return g.Split(axis, g.focus)
}

// Close removes a pane and returns the pane that took its space. Closing the last pane
// keeps the pane and resets it to a Selector instead
func (g *PaneGrid) Close(id PaneID) (PaneID, error) {
	p, ok := g.panes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	if p.pinned {
		return 0, fmt.Errorf("%w: %d", ErrPanePinned, id)
	}
	if len(g.panes) == 1 {
		err := g.replaceTool(id, NewSelector())
		return id, err
	}
	_, parent := g.root.findPane(id, nil)
	sibling := parent.a
	if sibling.isLeaf() && sibling.pane == id {
		sibling = parent.b
	}
	*parent = *sibling
	delete(g.panes, id)
	next := parent.firstPane()
	if g.focus == id {
		g.focus = next
	}
	if g.maximized == id {
		g.maximized = 0
	}
	g.logger.Debug("closed pane", "component", "workbench", "pane", id)
	return next, closeTool(p.tool)
}

// CloseFocused closes the focused pane unless it is pinned
func (g *PaneGrid) CloseFocused() (PaneID, error) {
	if g.focus == 0 {
		return 0, ErrNoFocus
	}
	return g.Close(g.focus)
}

// Resize sets the share of a split given to its first half. The ratio is clamped to [0, 1]
func (g *PaneGrid) Resize(split SplitID, ratio float64) error {
	n := g.root.findSplit(split)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrSplitNotFound, split)
	}
	n.ratio = lo.Clamp(ratio, 0, 1)
	return nil
}

func (g *PaneGrid) Maximize(id PaneID) error {
	if _, ok := g.panes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	g.maximized = id
	return nil
}

func (g *PaneGrid) Restore() {
	g.maximized = 0
}

func (g *PaneGrid) Maximized() (PaneID, bool) {
	return g.maximized, g.maximized != 0
}

func (g *PaneGrid) Focus(id PaneID) error {
	if _, ok := g.panes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	g.focus = id
	return nil
}

func (g *PaneGrid) Focused() (PaneID, bool) {
	return g.focus, g.focus != 0
}

// FocusAdjacent moves focus to the pane next to the focused one in direction. Focus does
// not change when there is no pane on that side
func (g *PaneGrid) FocusAdjacent(direction Direction) (PaneID, error) {
	if g.focus == 0 {
		return 0, ErrNoFocus
	}
	adjacent, ok := g.Adjacent(g.focus, direction)
	if ok {
		g.focus = adjacent
	}
	return g.focus, nil
}

// Adjacent finds the pane bordering id in direction, measured from the middle of its edge
func (g *PaneGrid) Adjacent(id PaneID, direction Direction) (PaneID, bool) {
	regions := g.layoutRegions(Rect{Width: 1, Height: 1})
	r, ok := regions[id]
	if !ok {
		return 0, false
	}
	x, y := r.X+r.Width/2, r.Y+r.Height/2
	switch direction {
	case DirectionUp:
		y = r.Y - epsilon
	case DirectionDown:
		y = r.Y + r.Height + epsilon
	case DirectionLeft:
		x = r.X - epsilon
	case DirectionRight:
		x = r.X + r.Width + epsilon
	}
	for paneId, region := range regions {
		if paneId != id && region.contains(x, y) {
			return paneId, true
		}
	}
	return 0, false
}

func (g *PaneGrid) TogglePin(id PaneID) error {
	p, ok := g.panes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	p.pinned = !p.pinned
	return nil
}

func (g *PaneGrid) Pinned(id PaneID) bool {
	p, ok := g.panes[id]
	return ok && p.pinned
}

// Dispatch routes msg to the tool in a pane. A Selector pane handles SelectTool by
// replacing itself with a new tool of the selected kind
func (g *PaneGrid) Dispatch(id PaneID, msg Message) error {
	p, ok := g.panes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	if sel, ok := msg.(SelectTool); ok {
		if _, isSelector := p.tool.(*Selector); isSelector {
			tool, err := g.factory(g.ctx, sel.Kind)
			if err != nil {
				return err
			}
			return g.replaceTool(id, tool)
		}
	}
	return p.tool.Update(msg)
}

// Swap replaces the tool in a pane. The previous tool is closed if it implements io.Closer
func (g *PaneGrid) Swap(id PaneID, tool Tool) error {
	if _, ok := g.panes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	return g.replaceTool(id, tool)
}

// Drop exchanges the positions of two panes in the layout
func (g *PaneGrid) Drop(id PaneID, target PaneID) error {
	leaf, _ := g.root.findPane(id, nil)
	if leaf == nil {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, id)
	}
	targetLeaf, _ := g.root.findPane(target, nil)
	if targetLeaf == nil {
		return fmt.Errorf("%w: %d", ErrPaneNotFound, target)
	}
	leaf.pane, targetLeaf.pane = target, id
	return nil
}

// Regions lays out the visible panes within bounds. Only the maximized pane is visible
// while one is maximized
func (g *PaneGrid) Regions(bounds Rect) map[PaneID]Rect {
	if g.maximized != 0 {
		return map[PaneID]Rect{g.maximized: bounds}
	}
	return g.layoutRegions(bounds)
}

func (g *PaneGrid) layoutRegions(bounds Rect) map[PaneID]Rect {
	ret := make(map[PaneID]Rect, len(g.panes))
	g.root.regions(bounds, ret)
	return ret
}

// Shutdown closes every tool in the grid
func (g *PaneGrid) Shutdown() error {
	var errs *multierror.Error
	for _, id := range g.Panes() {
		if err := closeTool(g.panes[id].tool); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (g *PaneGrid) replaceTool(id PaneID, tool Tool) error {
	p := g.panes[id]
	old := p.tool
	p.tool = tool
	g.logger.Debug(
		"replaced pane tool",
		"component", "workbench",
		"pane", id,
		"tool", tool.Name(),
	)
	return closeTool(old)
}

func closeTool(tool Tool) error {
	if closer, ok := tool.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
