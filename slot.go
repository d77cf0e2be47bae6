package viewstash

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Container is the region of the program a Manager occupies. Attach and
// Detach are membership notifications only; saving and restoring state is
// the manager's job. Hosts with their own layout machinery implement
// Container directly, everyone else uses a Slot.
type Container interface {
	Attach(v View)
	Detach(v View)
}

// Slot is a stock Container that tracks attached views in attach order and
// renders them stacked top to bottom, the available height split evenly.
// Views are matched by interface identity on Detach, so they should be
// pointer values.
type Slot struct {
	views []View
}

// NewSlot returns an empty slot.
func NewSlot() *Slot { return &Slot{} }

// Attach adds v to the slot. A nil view is ignored.
func (s *Slot) Attach(v View) {
	if v == nil {
		return
	}
	s.views = append(s.views, v)
}

// Detach removes v from the slot. Detaching a view that is not attached is
// a no-op.
func (s *Slot) Detach(v View) {
	for i, have := range s.views {
		if have == v {
			s.views = append(s.views[:i], s.views[i+1:]...)
			return
		}
	}
}

// Len returns the number of attached views.
func (s *Slot) Len() int { return len(s.views) }

// Views returns the attached views in attach order.
func (s *Slot) Views() []View {
	out := make([]View, len(s.views))
	copy(out, s.views)
	return out
}

// View renders the attached views stacked vertically. Each view gets the
// full width and an even share of the height, remainder to the earlier
// views; every line is truncated and padded to width so the slot always
// fills its rectangle.
func (s *Slot) View(width, height int) string {
	if len(s.views) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitHeights(height, len(s.views))
	lines := make([]string, 0, height)
	for i, v := range s.views {
		part := strings.Split(v.View(width, heights[i]), "\n")
		for len(part) < heights[i] {
			part = append(part, "")
		}
		for _, line := range part[:heights[i]] {
			lines = append(lines, padRight(line, width))
		}
	}
	return strings.Join(lines, "\n")
}

func splitHeights(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
