package ui

import (
	"github.com/olivier-w/damplab/internal/simulation"
	"github.com/olivier-w/damplab/internal/smoothing"
)

type slotKind int

const (
	slotFnParam slotKind = iota
	slotTargetFPS
	slotSimTime
	slotFirstRate
	slotSecondRate
)

// slot is one tab-selectable control: a parameter of the active function or
// a setting of the active mode.
type slot struct {
	name  string
	min   float64
	max   float64
	step  float64
	value float64
	kind  slotKind
	idx   int // parameter index for slotFnParam
}

// slots lists the controls in cursor order: function parameters first, then
// the active mode's settings. There is always at least one slot.
func (m Model) slots() []slot {
	var out []slot
	for i, p := range m.fn.Params() {
		out = append(out, slot{name: p.Name, min: p.Min, max: p.Max, step: p.Step, value: p.Value, kind: slotFnParam, idx: i})
	}

	if m.sim.Mode == simulation.ModeCompare {
		st := m.sim.Compare
		out = append(out,
			slot{name: "sim time", min: 0.1, max: 10, step: 0.5, value: st.SimTime, kind: slotSimTime},
			slot{name: "fps a", min: 10, max: 240, step: 5, value: st.FirstRate, kind: slotFirstRate},
			slot{name: "fps b", min: 10, max: 240, step: 5, value: st.SecondRate, kind: slotSecondRate},
		)
	} else {
		out = append(out, slot{name: "target fps", min: 10, max: 240, step: 10, value: m.targetFPS, kind: slotTargetFPS})
	}
	return out
}

// setSlot clamps v to the slot's range and routes it to its owner. This is
// the range-enforcement boundary; the core packages trust what they get.
func (m Model) setSlot(i int, v float64) Model {
	slots := m.slots()
	if i < 0 || i >= len(slots) {
		return m
	}
	s := slots[i]
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}

	switch s.kind {
	case slotFnParam:
		m.fn.SetParam(s.idx, v)
	case slotTargetFPS:
		m.targetFPS = v
	case slotSimTime:
		m.sim.Compare.SimTime = v
	case slotFirstRate:
		m.sim.Compare.FirstRate = v
	case slotSecondRate:
		m.sim.Compare.SecondRate = v
	}
	return m
}

func (m Model) adjustSlot(i int, dir float64) Model {
	slots := m.slots()
	if i < 0 || i >= len(slots) {
		return m
	}
	return m.setSlot(i, slots[i].value+dir*slots[i].step)
}

// selectFunction installs the registry entry at idx. The registry hands out
// fresh instances, so selecting always starts from default parameters.
func (m Model) selectFunction(idx int) Model {
	fns := smoothing.All()
	if idx < 0 || idx >= len(fns) {
		return m
	}
	m.fnIdx = idx
	m.fn = fns[idx]
	m.cursor = 0
	return m
}

func (m Model) cycleFunction(dir int) Model {
	n := len(smoothing.All())
	return m.selectFunction(((m.fnIdx+dir)%n + n) % n)
}

// reset restores the active mode to its starting state: Live flattens the
// trace back at the start value, Compare reinstalls default settings. The
// function's parameters go back to defaults either way.
func (m Model) reset() Model {
	m.fn = smoothing.All()[m.fnIdx]
	if m.sim.Mode == simulation.ModeCompare {
		*m.sim.Compare = simulation.DefaultCompareSettings()
	} else {
		m.sim.Live.Reset(liveStart)
	}
	m.cursor = 0
	return m
}
