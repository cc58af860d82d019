// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package truncate decides whether a displayed post needs a "show more"
// affordance.
//
// A [Controller] renders the same decoded content twice,
// once unconstrained and once clamped to a fixed number of lines,
// and compares the two measured heights.
// The measurement itself is supplied by the presentation layer
// through a [Measurer], so the controller does not depend on any
// particular layout engine.
package truncate

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"zombiezen.com/go/postcontent"
)

// DefaultLineClamp is the number of visual lines shown for truncated content
// when [Config.LineClamp] is zero.
const DefaultLineClamp = 5

// ErrNoContent is returned by operations that require content
// before [Controller.SetContent] has been called.
var ErrNoContent = errors.New("no content set")

// State is the display state of a [Controller].
type State uint8

const (
	// Measuring means the content's heights are not yet known.
	// The content is displayed clamped until a decision is made.
	Measuring State = 1 + iota
	// Truncated means the content overflows the line clamp.
	// The content is displayed clamped with a "show more" affordance.
	Truncated
	// Expanded means the content is displayed without an affordance,
	// either because it fits within the line clamp
	// or because the user expanded it.
	Expanded
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Measuring:
		return "Measuring"
	case Truncated:
		return "Truncated"
	case Expanded:
		return "Expanded"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// A Measurer reports the layout height of rendered paragraphs.
// If lineClamp is zero, the paragraphs are laid out unconstrained.
// Otherwise, the layout is limited to lineClamp visual lines.
//
// Heights may be in any unit, as long as both renders of a piece of content
// are measured in the same unit.
type Measurer interface {
	Measure(paragraphs []postcontent.RenderParagraph, lineClamp int) (float64, error)
}

// Config is the set of parameters to [New].
type Config struct {
	// LineClamp is the number of visual lines shown while truncated.
	// If zero, DefaultLineClamp is used.
	LineClamp int
	// If OnChange is not nil, it is called with the new view
	// after every state change.
	// It is called without the controller's lock held,
	// so it may call methods on the controller.
	// Calls to OnChange never overlap and views are delivered in order.
	// A view superseded by a newer change before it could be delivered
	// is skipped, so OnChange may run on a different goroutine
	// than the one that made the change.
	OnChange func(View)
}

// A Ticket identifies one measurement pass of a [Controller].
// The presentation layer lays out Paragraphs twice,
// unconstrained and clamped to LineClamp,
// and passes the measured heights to [Controller.Resolve].
type Ticket struct {
	Generation uint64
	// Paragraphs is the decoded content.
	// It is shared with the controller and must not be modified.
	Paragraphs []postcontent.RenderParagraph
	LineClamp  int
}

// View describes how the content should be displayed.
type View struct {
	// Generation is the measurement pass the view belongs to.
	// It matches the Generation of the current [Ticket].
	Generation uint64
	State      State
	// ShowMore reports whether the "show more" affordance is visible.
	ShowMore bool
	// Constrained reports whether the display is clamped
	// to the line clamp height.
	Constrained bool
	// Height is the height to display the content at.
	// It is zero while measuring.
	Height     float64
	Paragraphs []postcontent.RenderParagraph
}

// A Controller is the truncation state machine for a single displayed post.
// It is safe to call methods on a Controller from multiple goroutines.
type Controller struct {
	lineClamp int
	onChange  func(View)

	mu         sync.Mutex
	hasContent bool
	markup     string
	paragraphs []postcontent.RenderParagraph
	generation uint64
	state      State
	userExpand bool
	full       float64
	clamped    float64
	changes    uint64 // incremented on every state change

	notifyMu   sync.Mutex
	pending    View
	pendingSeq uint64
	notifySeq  uint64 // sequence of the last view delivered or pending
	delivering bool
}

// New returns a new controller with no content.
func New(cfg Config) *Controller {
	lineClamp := cfg.LineClamp
	if lineClamp <= 0 {
		lineClamp = DefaultLineClamp
	}
	return &Controller{
		lineClamp: lineClamp,
		onChange:  cfg.OnChange,
		state:     Measuring,
	}
}

// LineClamp returns the number of visual lines shown while truncated.
func (c *Controller) LineClamp() int {
	return c.lineClamp
}

// SetContent sets the markup to display.
// If the markup differs from the current content
// (or no content has been set yet),
// the controller discards its previous decision, decodes the markup,
// and returns to the Measuring state with a new generation.
// Otherwise SetContent returns the current ticket and changes nothing.
func (c *Controller) SetContent(markup string) Ticket {
	c.mu.Lock()
	if c.hasContent && c.markup == markup {
		t := c.ticketLocked()
		c.mu.Unlock()
		return t
	}
	c.hasContent = true
	c.markup = markup
	c.paragraphs = postcontent.Decode(markup)
	t := c.restartLocked()
	seq, v := c.changeLocked()
	c.mu.Unlock()

	c.notify(seq, v)
	return t
}

// Remount returns the controller to the Measuring state
// for the current content, as when the display is recreated.
func (c *Controller) Remount() (Ticket, error) {
	c.mu.Lock()
	if !c.hasContent {
		c.mu.Unlock()
		return Ticket{}, fmt.Errorf("remount: %w", ErrNoContent)
	}
	t := c.restartLocked()
	seq, v := c.changeLocked()
	c.mu.Unlock()

	c.notify(seq, v)
	return t, nil
}

func (c *Controller) restartLocked() Ticket {
	c.generation++
	c.state = Measuring
	c.userExpand = false
	c.full = 0
	c.clamped = 0
	return c.ticketLocked()
}

func (c *Controller) ticketLocked() Ticket {
	return Ticket{
		Generation: c.generation,
		Paragraphs: c.paragraphs,
		LineClamp:  c.lineClamp,
	}
}

// Resolve applies the measured heights of a ticket's two renders.
// The result is only applied if the ticket is from the current generation
// and the controller is still measuring;
// otherwise it is dropped and Resolve returns false.
//
// Content taller than its clamped render becomes Truncated.
// Anything else becomes Expanded without an affordance.
func (c *Controller) Resolve(t Ticket, full, clamped float64) bool {
	c.mu.Lock()
	if !c.hasContent || t.Generation != c.generation || c.state != Measuring {
		c.mu.Unlock()
		return false
	}
	c.full = full
	c.clamped = clamped
	if full > clamped {
		c.state = Truncated
	} else {
		c.state = Expanded
	}
	seq, v := c.changeLocked()
	c.mu.Unlock()

	c.notify(seq, v)
	return true
}

// Measure measures the current content with m and resolves the result.
// If the content changes while m is running, the result is dropped
// and the controller stays in the Measuring state for the new content.
// Errors from m are returned and leave the state unchanged.
func (c *Controller) Measure(m Measurer) error {
	c.mu.Lock()
	if !c.hasContent {
		c.mu.Unlock()
		return fmt.Errorf("measure post content: %w", ErrNoContent)
	}
	t := c.ticketLocked()
	c.mu.Unlock()

	full, err := m.Measure(t.Paragraphs, 0)
	if err != nil {
		return fmt.Errorf("measure post content: %w", err)
	}
	clamped, err := m.Measure(t.Paragraphs, t.LineClamp)
	if err != nil {
		return fmt.Errorf("measure post content: clamped to %d lines: %w", t.LineClamp, err)
	}
	c.Resolve(t, full, clamped)
	return nil
}

// Expand removes the line clamp from truncated content.
// It reports whether the controller was in the Truncated state.
// Expanded content stays expanded until the content changes.
func (c *Controller) Expand() bool {
	c.mu.Lock()
	if c.state != Truncated {
		c.mu.Unlock()
		return false
	}
	c.state = Expanded
	c.userExpand = true
	seq, v := c.changeLocked()
	c.mu.Unlock()

	c.notify(seq, v)
	return true
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns how the current content should be displayed.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	v := View{
		Generation: c.generation,
		State:      c.state,
		Paragraphs: c.paragraphs,
	}
	switch {
	case c.state == Measuring:
		v.Constrained = true
	case c.state == Truncated:
		v.ShowMore = true
		v.Constrained = true
		v.Height = c.clamped
	case c.userExpand:
		v.Height = c.full
	default:
		// Fits within the clamp: the constraint is kept but has no effect.
		v.Constrained = true
		v.Height = c.clamped
	}
	return v
}

// changeLocked records a state change
// and returns its sequence number along with the new view.
func (c *Controller) changeLocked() (uint64, View) {
	c.changes++
	return c.changes, c.viewLocked()
}

// notify delivers the view for change seq to OnChange.
// Only one goroutine delivers at a time.
// Other goroutines hand their view to the deliverer and return,
// and views older than the last one queued are dropped.
func (c *Controller) notify(seq uint64, v View) {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	if seq <= c.notifySeq {
		c.notifyMu.Unlock()
		return
	}
	c.notifySeq = seq
	c.pending = v
	c.pendingSeq = seq
	if c.delivering {
		c.notifyMu.Unlock()
		return
	}
	c.delivering = true
	for c.pendingSeq != 0 {
		v := c.pending
		c.pending = View{}
		c.pendingSeq = 0
		c.notifyMu.Unlock()
		c.onChange(v)
		c.notifyMu.Lock()
	}
	c.delivering = false
	c.notifyMu.Unlock()
}
