// Package demo walks a small integer sequence through every transform and
// records each step for display.
package demo

import (
	"fmt"

	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/memory"
	"github.com/wippyai/fixedseq/nat"
	"github.com/wippyai/fixedseq/seq"
)

// Step is one transform with its rendered arguments and results.
type Step struct {
	Op     string
	Input  string
	Output string
}

func (s Step) String() string {
	return fmt.Sprintf("%s(%s) = %s", s.Op, s.Input, s.Output)
}

// Result is the recorded walk-through and the sequence it ends with.
type Result struct {
	Final seq.Sequence[int32, nat.U4]
	Steps []Step
}

func base() seq.Sequence[int32, nat.U3] {
	return seq.MustNew[nat.U3, int32](1, 2, 3)
}

// Run performs append, prepend, pop_back, pop_front, split<2> and concat
// starting from [1 2 3]. A violated length relation is returned as an error.
func Run() (res Result, err error) {
	defer errors.Recover(&err)

	var steps []Step
	record := func(op, in, out string) {
		steps = append(steps, Step{Op: op, Input: in, Output: out})
	}

	s := base()
	in := s.String()
	appended := seq.Append(s, 4)
	record("append", in+", 4", appended.String())

	s = base()
	in = s.String()
	prepended := seq.Prepend(s, 4)
	record("prepend", in+", 4", prepended.String())

	in = appended.String()
	shorter, last := seq.PopBack(appended)
	record("pop_back", in, fmt.Sprintf("(%v, %d)", shorter, last))

	regrown := seq.Append(shorter, last)
	in = regrown.String()
	first, rest := seq.PopFront(regrown)
	record("pop_front", in, fmt.Sprintf("(%d, %v)", first, rest))

	whole := seq.Prepend(rest, first)
	in = whole.String()
	head, tail := seq.Split[nat.U2, nat.U2](whole)
	record("split<2>", in, fmt.Sprintf("(%v, %v)", head, tail))

	in = head.String() + ", " + tail.String()
	joined := seq.Concat[nat.U4](head, tail)
	record("concat", in, joined.String())

	return Result{Final: joined, Steps: steps}, nil
}

// RoundTrip stores s in mem at offset, reads the raw block back and loads
// it as a new sequence.
func RoundTrip(mem memory.Memory, offset uint32, s seq.Sequence[int32, nat.U4]) (Step, error) {
	in := s.String()
	n, err := memory.Store(mem, offset, s)
	if err != nil {
		return Step{}, err
	}

	raw, err := mem.Read(offset, n)
	if err != nil {
		return Step{}, err
	}
	block := fmt.Sprintf("% x", raw)

	loaded, err := memory.Load[nat.U4, int32](mem, offset)
	if err != nil {
		return Step{}, err
	}

	return Step{
		Op:     fmt.Sprintf("store/load@%d", offset),
		Input:  in,
		Output: fmt.Sprintf("%v via [%s]", loaded, block),
	}, nil
}
