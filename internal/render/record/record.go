// Package record provides a render.Surface that remembers every call made
// to it instead of drawing.
package record

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op names a surface operation
type Op string

// Surface operations
const (
	OpBeginPath    Op = "beginPath"
	OpMoveTo       Op = "moveTo"
	OpLineTo       Op = "lineTo"
	OpStroke       Op = "stroke"
	OpEllipse      Op = "ellipse"
	OpFill         Op = "fill"
	OpSetLineWidth Op = "lineWidth"
)

// Call is one recorded surface call
type Call struct {
	Op   Op
	Args []float64
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return string(c.Op) + "()"
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return string(c.Op) + "(" + strings.Join(args, ", ") + ")"
}

// Recorder implements render.Surface by appending to Calls
type Recorder struct {
	Calls []Call
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) BeginPath()          { r.add(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64) { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add(OpLineTo, x, y) }
func (r *Recorder) Stroke()             { r.add(OpStroke) }
func (r *Recorder) Fill()               { r.add(OpFill) }

func (r *Recorder) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64) {
	r.add(OpEllipse, cx, cy, rx, ry, rotation, startAngle, endAngle)
}

func (r *Recorder) SetLineWidth(width float64) { r.add(OpSetLineWidth, width) }

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// WriteTo writes one call per line
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range r.Calls {
		n, err := fmt.Fprintln(w, c.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
