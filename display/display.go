// Package display renders the state of a match as text.
package display

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/cpu"
	"github.com/ezrec/codefight/emulator"
)

// RANGE_LENGTH is the number of cells shown by a range display.
const RANGE_LENGTH = 10

// Symbols are the match independent display tags.
type Symbols struct {
	Unchanged    string // Cell never written by a competitor.
	RangeLimit   string // Bounds of a range display.
	NextOfNext   string // Next instruction of the competitor to run next.
	NextOfOthers string // Next instruction of any other competitor.
}

// View is the read-only match state needed for rendering.
type View interface {
	Size() int
	Cursor() int
	Cell(addr int64) core.Cell
	Range(addr int64, count int) iter.Seq2[int, core.Cell]
	Competitors() []cpu.Competitor
	Competitor(name string) (cpu.Competitor, bool)
	Running() []string
	Stopped() []string
}

// Display renders views with a set of symbols.
type Display struct {
	Symbols
}

// symbols returns the tag of every cell of the view.
func (ds *Display) symbols(view View) (tags []string) {
	size := view.Size()
	comps := view.Competitors()
	cursor := view.Cursor()

	tags = make([]string, size)
	for n, cell := range view.Range(0, size) {
		tags[n] = cell.Owner
		if len(tags[n]) == 0 {
			tags[n] = ds.Unchanged
		}
	}

	if cursor == emulator.NEXT_NONE {
		return
	}

	for k, comp := range comps {
		if k == cursor || !comp.Alive {
			continue
		}
		tags[int(comp.Ip)%size] = ds.NextOfOthers
	}

	if comp := comps[cursor]; comp.Alive {
		tags[int(comp.Ip)%size] = ds.NextOfNext
	}

	return
}

// Memory returns one symbol per cell of the core.
func (ds *Display) Memory(view View) string {
	return strings.Join(ds.symbols(view), "")
}

// Range returns the memory line with the limits of the range starting at
// start marked, followed by the cells of the range, one per line.
func (ds *Display) Range(view View, start int) string {
	size := view.Size()
	start = ((start % size) + size) % size
	tags := ds.symbols(view)

	var line strings.Builder
	for n, tag := range tags {
		if RANGE_LENGTH > size {
			// The range covers the whole core.
			if n == start {
				line.WriteString(ds.RangeLimit)
				if start != 0 {
					line.WriteString(ds.RangeLimit)
				}
			}
		} else if n == start || n == (start+RANGE_LENGTH)%size {
			line.WriteString(ds.RangeLimit)
		}
		line.WriteString(tag)
	}
	if RANGE_LENGTH > size && start == 0 {
		line.WriteString(ds.RangeLimit)
	}

	lines := []string{line.String()}

	// A range never shows a cell twice.
	cells := view.Range(int64(start), RANGE_LENGTH)

	var width [4]int
	for n, cell := range cells {
		for col, text := range []string{
			fmt.Sprint(n),
			cell.Opcode.String(),
			fmt.Sprint(cell.A),
			fmt.Sprint(cell.B),
		} {
			width[col] = max(width[col], len(text))
		}
	}

	for n, cell := range cells {
		lines = append(lines, fmt.Sprintf("%s %*d: %*s | %*d | %*d",
			tags[n],
			width[0], n,
			width[1], cell.Opcode,
			width[2], cell.A,
			width[3], cell.B))
	}

	return strings.Join(lines, "\n")
}

// Competitor returns the status of the named competitor.
func Competitor(view View, name string) (text string, ok bool) {
	comp, ok := view.Competitor(name)
	if !ok {
		return
	}

	if !comp.Alive {
		text = fmt.Sprintf("%s (STOPPED@%d)", comp.Name, comp.Steps)
		return
	}

	text = fmt.Sprintf("%s (RUNNING@%d)\nNext Command: %v @%d",
		comp.Name, comp.Steps, view.Cell(comp.Ip), int(comp.Ip)%view.Size())
	return
}

// Summary lists the running and the stopped competitors.
func Summary(view View) string {
	var lines []string

	running := view.Running()
	if len(running) > 0 {
		lines = append(lines, "Running AIs: "+strings.Join(running, ", "))
	}

	stopped := view.Stopped()
	if len(stopped) > 0 {
		lines = append(lines, "Stopped AIs: "+strings.Join(stopped, ", "))
	}

	return strings.Join(lines, "\n")
}
