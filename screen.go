package progressw

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument is returned for a negative completed value or a missing total.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	cursorReturn = "\r"
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	eraseLine    = "\x1b[2K"
	lineBreak    = "\n"
	crlf         = "\r\n"
)

// cursorUpClear moves the cursor to the first of rows lines and clears to the
// end of the screen.
func cursorUpClear(rows int) string {
	if rows <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(rows-1) + "A\r\x1b[?0J"
}

// cursorTail is appended to console output: the cursor stays hidden while a
// bar is live, End has shown it again.
func cursorTail(ended bool) string {
	if ended {
		return ""
	}
	return hideCursor
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures the collaborators of a bar.
type Option func(s *screen)

// WithTerminal sets the provider queried for the terminal width.
func WithTerminal(t TerminalInfo) Option {
	return func(s *screen) {
		s.term = t
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(c Clock) Option {
	return func(s *screen) {
		s.now = c
	}
}

// screen holds what every bar needs from the outside world.
type screen struct {
	out  io.Writer
	term TerminalInfo
	now  Clock
	log  *logrus.Entry
}

func newScreen(out io.Writer, kind string, opts []Option) screen {
	if out == nil {
		out = os.Stdout
	}
	s := screen{out: out, now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	if s.term == nil {
		if f, ok := out.(*os.File); ok {
			s.term = NewFdTerminal(f)
		} else {
			s.term = FixedTerminal(DefaultColumns)
		}
	}
	s.log = log.WithFields(logrus.Fields{"bar": uuid.NewString(), "kind": kind})
	return s
}

func (s *screen) columns() int {
	return MaxInt(s.term.Columns(), 0)
}

// write emits one frame; a frame is always a single Write on the sink.
func (s *screen) write(frame string) error {
	if frame == "" {
		return nil
	}
	_, err := io.WriteString(s.out, frame)
	return err
}

// frame is what a bar computed for one render call.
type frame struct {
	completed  int
	total      int
	title      string
	text       string
	complete   string
	incomplete string
	precise    []string
	pretty     bool
	timeOpts   TimeOptions
	display    string
	width      int
}

func validate(completed, total int) error {
	if completed < 0 {
		return fmt.Errorf("%w: completed must be greater than or equal to 0, got %d", ErrInvalidArgument, completed)
	}
	if total <= 0 {
		return fmt.Errorf("%w: total required", ErrInvalidArgument)
	}
	return nil
}

// tokens returns every template value except the bar itself.
func (f *frame) tokens(elapsed time.Duration) map[Token]string {
	ms := float64(elapsed) / float64(time.Millisecond)
	format := formatSeconds
	if f.pretty {
		format = func(ms float64) string { return PrettyTime(ms, f.timeOpts) }
	}

	eta := "-"
	if f.completed >= f.total {
		eta = format(0)
	} else if f.completed > 0 {
		eta = format((float64(f.total)/float64(f.completed) - 1) * ms)
	}

	return map[Token]string{
		TokenTitle:     f.title,
		TokenText:      f.text,
		TokenTime:      format(ms),
		TokenEta:       eta,
		TokenPercent:   strconv.FormatFloat(float64(f.completed)/float64(f.total)*100, 'f', 2, 64) + "%",
		TokenCompleted: strconv.Itoa(f.completed),
		TokenTotal:     strconv.Itoa(f.total),
	}
}

// line renders the template for a terminal columns wide. The bar gets what
// is left of the line once every other token is in place, capped at width.
func (f *frame) line(elapsed time.Duration, columns int) string {
	tokens := f.tokens(elapsed)
	tokens[TokenBar] = ""
	available := MaxInt(columns-VisibleLen(RenderTemplate(f.display, tokens)), 0)
	width := MinInt(f.width, available)

	tokens[TokenBar] = ComputeBar(width, f.completed, f.total, f.complete, f.incomplete, f.precise, f.completed >= f.total)
	return RenderTemplate(f.display, tokens)
}

// padTo appends spaces so that line covers lastLen visible cells.
func padTo(line string, lastLen int) string {
	return line + repeat(" ", lastLen-VisibleLen(line))
}
