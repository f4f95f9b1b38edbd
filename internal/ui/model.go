package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/damplab/internal/simulation"
	"github.com/olivier-w/damplab/internal/smoothing"
)

const (
	// liveStart is where the Live value and goal begin, in the normalized
	// [0,1] canvas space. 0 is the bottom row.
	liveStart = 0.5

	// Compare runs always replay the same fall: 100 down to 0.
	compareStart = 100.0
	compareGoal  = 0.0

	// maxFrameDt caps the observed frame delta so a stalled terminal does
	// not register as one giant simulation step.
	maxFrameDt = 0.25

	frameMSLen = 120

	panelWidth  = 34
	sliderWidth = 12

	// canvasTop/canvasLeft locate the canvas inside the rendered view, for
	// mapping pointer positions back to goal values.
	canvasTop  = 3
	canvasLeft = 2

	minCanvasCols = 20
	minCanvasRows = 8
)

// Model is the Bubbletea model for the damplab TUI.
type Model struct {
	sim   *simulation.Simulator
	fn    smoothing.Function
	fnIdx int

	targetFPS float64
	paused    bool
	cursor    int

	width, height          int
	canvasCols, canvasRows int

	lastTick time.Time
	frameMS  []float64
	fps      fpsMeter

	editor editor
	picker picker

	quitting bool
}

// New creates a new Model showing the registry function at fnIdx, ticking at
// targetFPS frames per second. startCompare opens in Compare mode.
func New(fnIdx int, targetFPS float64, startCompare bool) Model {
	fns := smoothing.All()
	if fnIdx < 0 || fnIdx >= len(fns) {
		fnIdx = 0
	}

	m := Model{
		sim:        simulation.NewSimulator(liveStart),
		fn:         fns[fnIdx],
		fnIdx:      fnIdx,
		targetFPS:  targetFPS,
		canvasCols: minCanvasCols,
		canvasRows: minCanvasRows,
		frameMS:    make([]float64, 0, frameMSLen),
		fps:        newFPSMeter(),
		editor:     newEditor(),
		picker:     newPicker(),
	}
	if startCompare {
		m.sim.EnterCompare()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.targetFPS), tea.SetWindowTitle("damplab"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picker.active && m.height > 2 {
			m.picker.list.SetSize(m.width, m.height-2)
		}
		return m.layoutCanvas(), nil

	case tea.MouseMsg:
		if m.editor.active || m.picker.active {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.editor.active {
			return m.updateEditor(msg)
		}
		if m.picker.active {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	// Everything else (cursor blink, list internals) belongs to whichever
	// modal is open.
	if m.editor.active {
		return m.updateEditor(msg)
	}
	if m.picker.active {
		return m.updatePicker(msg)
	}
	return m, nil
}

// handleTick advances the Live simulation by the observed frame delta and
// schedules the next frame. The simulation keeps running under open modals;
// only the space bar stops it.
func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	now := time.Time(msg)
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	if m.sim.Mode == simulation.ModeLive && !m.paused {
		m.sim.Live.Step(m.fn, dt)
	}

	if dt > 0 {
		m.frameMS = append(m.frameMS, dt*1000)
		if len(m.frameMS) > frameMSLen {
			m.frameMS = m.frameMS[1:]
		}
		m.fps.step(1 / dt)
	}

	return m, tickCmd(m.targetFPS)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "m":
		m.sim.Toggle()
		m.cursor = 0
	case "tab":
		m.cursor = (m.cursor + 1) % len(m.slots())
	case "shift+tab":
		n := len(m.slots())
		m.cursor = (m.cursor + n - 1) % n
	case "up", "k", "+":
		m = m.adjustSlot(m.cursor, 1)
	case "down", "j", "-":
		m = m.adjustSlot(m.cursor, -1)
	case "left", "h":
		m = m.cycleFunction(-1)
	case "right", "l":
		m = m.cycleFunction(1)
	case "1", "2", "3", "4", "5":
		m = m.selectFunction(int(msg.String()[0] - '1'))
	case "f":
		return m.openPicker()
	case "enter":
		return m.openEditor()
	case " ":
		if m.sim.Mode == simulation.ModeLive {
			m.paused = !m.paused
		}
	case "r":
		m = m.reset()
	}
	return m, nil
}

// handleMouse maps a click or drag on the canvas to a new goal. The canvas
// row under the pointer is normalized to [0,1] with the bottom row at 0,
// matching the plot's upward value axis, so the goal guide lands under the
// pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.sim.Mode != simulation.ModeLive {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return m, nil
	}

	row := msg.Y - canvasTop
	col := msg.X - canvasLeft
	if row < 0 || row >= m.canvasRows || col < 0 || col >= m.canvasCols {
		return m, nil
	}

	goal := 0.0
	if m.canvasRows > 1 {
		goal = 1 - float64(row)/float64(m.canvasRows-1)
	}
	m.sim.Live.SetGoal(goal)
	return m, nil
}

func (m Model) layoutCanvas() Model {
	cols := m.width - panelWidth - 6
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	rows := m.height - 6
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	m.canvasCols = cols
	m.canvasRows = rows
	return m
}
