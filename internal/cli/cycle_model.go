package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubie"
)

// repsPerTick bounds the work done between redraws.
const repsPerTick = 500

// cycleModel steps the cycle search a batch at a time so progress can be
// drawn between batches.
type cycleModel struct {
	seq         cubie.Sequence
	moveCap     int
	tracker     *cubie.Tracker
	repetitions int
	done        bool
	paused      bool
	quitting    bool
	startTime   time.Time
	elapsed     time.Duration
}

type cycleTickMsg time.Time

func newCycleModel(seq cubie.Sequence, moveCap int) *cycleModel {
	return &cycleModel{
		seq:       seq,
		moveCap:   moveCap,
		tracker:   cubie.NewTracker(),
		startTime: time.Now(),
	}
}

func (m *cycleModel) Init() tea.Cmd {
	return m.tick()
}

func (m *cycleModel) tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return cycleTickMsg(t)
	})
}

func (m *cycleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "p":
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		}

	case cycleTickMsg:
		if m.paused || m.done {
			return m, nil
		}
		m.step(repsPerTick)
		m.elapsed = time.Since(m.startTime)
		if m.done {
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// step applies up to n repetitions, stopping on solved or past the cap.
func (m *cycleModel) step(n int) {
	for i := 0; i < n && !m.done; i++ {
		m.tracker.ApplyMoves(m.seq)
		m.repetitions++
		if m.tracker.IsSolved() || m.tracker.MoveCount() > m.moveCap {
			m.done = true
		}
	}
}

// result reports the search outcome so far.
func (m *cycleModel) result() cubie.CycleResult {
	return cubie.CycleResult{
		Sequence:    m.seq,
		Repetitions: m.repetitions,
		Moves:       m.tracker.MoveCount(),
		Solved:      m.tracker.IsSolved(),
	}
}

func (m *cycleModel) View() string {
	if m.quitting && !m.done {
		return "Search stopped.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cycle Search"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Sequence: %s\n", moveStyle.Render(m.seq.String())))

	status := fmt.Sprintf("Repetitions: %d  Moves: %d / %d", m.repetitions, m.tracker.MoveCount(), m.moveCap)
	if m.paused {
		status += " [PAUSED]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.progressBar(40))
	b.WriteString("\n\n")

	switch {
	case m.done && m.tracker.IsSolved():
		b.WriteString(solvedStyle.Render("SOLVED!"))
	case m.done:
		b.WriteString(errorStyle.Render("Move cap reached"))
	default:
		b.WriteString(fmt.Sprintf("Time: %s", formatDuration(m.elapsed)))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("p/SPACE=pause  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// progressBar draws the move count against the cap.
func (m *cycleModel) progressBar(width int) string {
	filled := 0
	if m.moveCap > 0 {
		filled = m.tracker.MoveCount() * width / m.moveCap
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
