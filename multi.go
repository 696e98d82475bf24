package progressw

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DefaultMultiTotal is the total of a multi bar entry when neither the entry
// nor the config carries one.
const DefaultMultiTotal = 100

// BarState is one line of a multi bar batch. Empty fields fall back to the
// MultiProgressBar config.
type BarState struct {
	Completed   int
	Total       int
	Text        string
	Complete    string
	Incomplete  string
	TimeOptions *TimeOptions
}

type slot struct {
	str    string
	strLen int
	end    bool
}

// MultiProgressBar draws several independent bars as one block that is
// redrawn at once. Each bar freezes when it reaches its total; the block
// ends once every bar is frozen.
type MultiProgressBar struct {
	screen
	cfg Config

	mu         sync.Mutex
	start      time.Time
	lastRender time.Time
	bars       []slot
	startIndex int
	lastStr    string
	lastRows   int
	ended      bool
}

// NewMultiProgressBar builds a multi bar drawing on out, os.Stdout when out
// is nil. A non-empty title is shown as a fixed first line.
func NewMultiProgressBar(out io.Writer, cfg Config, opts ...Option) *MultiProgressBar {
	m := &MultiProgressBar{
		screen: newScreen(out, "multi", opts),
		cfg:    cfg.withDefaults(DefaultMultiDisplay),
	}
	if m.cfg.Title != "" {
		m.bars = append(m.bars, slot{str: m.cfg.Title, strLen: VisibleLen(m.cfg.Title)})
		m.startIndex = 1
	}
	m.start = m.now()
	m.log.Debugf("multi bar created, width:%d interval:%s", m.cfg.Width, m.cfg.Interval)
	return m
}

func (m *MultiProgressBar) totalOf(s BarState) int {
	switch {
	case s.Total > 0:
		return s.Total
	case m.cfg.Total > 0:
		return m.cfg.Total
	default:
		return DefaultMultiTotal
	}
}

// Render updates every bar of the batch, in order, and redraws the block.
// The whole batch is validated before any bar changes.
func (m *MultiProgressBar) Render(states []BarState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ended {
		m.log.Debug("render called after end")
		return nil
	}
	for i, s := range states {
		if err := validate(s.Completed, m.totalOf(s)); err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
	}

	now := m.now()
	elapsed := now.Sub(m.start)
	columns := m.columns()
	index := m.startIndex
	for _, s := range states {
		if index < len(m.bars) && m.bars[index].end {
			index++
			continue
		}
		total := m.totalOf(s)
		f := frame{
			completed:  s.Completed,
			total:      total,
			text:       s.Text,
			complete:   m.cfg.Complete,
			incomplete: m.cfg.Incomplete,
			precise:    m.cfg.PreciseBar,
			pretty:     m.cfg.PrettyTime,
			timeOpts:   m.cfg.timeOptions(),
			display:    m.cfg.Display,
			width:      m.cfg.Width,
		}
		if s.Complete != "" {
			f.complete = s.Complete
		}
		if s.Incomplete != "" {
			f.incomplete = s.Incomplete
		}
		if s.TimeOptions != nil {
			f.timeOpts = *s.TimeOptions
		}

		line := f.line(elapsed, columns)
		next := slot{str: line, strLen: VisibleLen(line), end: s.Completed >= total}
		if index < len(m.bars) {
			if line != m.bars[index].str {
				next.str = padTo(line, m.bars[index].strLen)
			}
			m.bars[index] = next
		} else {
			m.bars = append(m.bars, next)
		}
		index++
	}

	finished := m.finished()
	if now.Sub(m.lastRender) < m.cfg.Interval && !finished {
		m.log.Trace("frame throttled")
		return nil
	}
	m.lastRender = now

	lines := make([]string, len(m.bars))
	for i := range m.bars {
		lines[i] = m.bars[i].str
	}
	str := strings.Join(lines, lineBreak)
	if str != m.lastStr {
		if err := m.write(cursorUpClear(m.lastRows) + str + hideCursor); err != nil {
			return err
		}
		m.lastStr = str
		m.lastRows = len(m.bars)
	}

	if finished {
		return m.end()
	}
	return nil
}

func (m *MultiProgressBar) finished() bool {
	if len(m.bars) <= m.startIndex {
		return false
	}
	for _, b := range m.bars[m.startIndex:] {
		if !b.end {
			return false
		}
	}
	return true
}

// Console writes message above the block and redraws the block below it.
func (m *MultiProgressBar) Console(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tail := cursorTail(m.ended)
	return m.write(cursorUpClear(m.lastRows) + message + tail + lineBreak + m.lastStr + tail)
}

// End stops every bar. Later calls and renders are no-ops.
func (m *MultiProgressBar) End() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.end()
}

func (m *MultiProgressBar) end() error {
	if m.ended {
		return nil
	}
	m.ended = true
	m.log.Debug("multi bar ended")

	seq := lineBreak
	if m.cfg.Clear {
		seq = cursorUpClear(m.lastRows)
	}
	return m.write(seq + showCursor)
}

func (m *MultiProgressBar) Ended() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ended
}
