package progressw

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"
)

// FunnyProgressBar draws an ASCII-art image together with the progress.
// Vertically, a column of glyphs on the right edge of the image fills from
// the bottom up; horizontally, a regular bar line follows the image.
type FunnyProgressBar struct {
	screen
	cfg Config

	mu         sync.Mutex
	start      time.Time
	lastRender time.Time
	lastStr    string
	lastRows   int
	ended      bool
}

func NewFunnyProgressBar(out io.Writer, cfg Config, opts ...Option) *FunnyProgressBar {
	p := &FunnyProgressBar{
		screen: newScreen(out, "funny", opts),
		cfg:    cfg.withDefaults(DefaultFunnyDisplay),
	}
	p.start = p.now()
	p.log.Debugf("funny bar created, horizontal:%t", p.cfg.Horizontal)
	return p
}

// Render draws image with the progress of completed. The total comes from
// WithTotal, the config, or DefaultMultiTotal.
func (p *FunnyProgressBar) Render(completed int, image string, opts ...RenderOption) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ended {
		p.log.Debug("render called after end")
		return nil
	}
	o := applyOverrides(p.cfg, opts)
	total := o.cfg.Total
	if total <= 0 {
		total = DefaultMultiTotal
	}
	if err := validate(completed, total); err != nil {
		return err
	}

	now := p.now()
	end := completed >= total
	if now.Sub(p.lastRender) < p.cfg.Interval && !end {
		return nil
	}
	p.lastRender = now

	f := frame{
		completed:  completed,
		total:      total,
		title:      o.cfg.Title,
		text:       o.text,
		complete:   o.cfg.Complete,
		incomplete: o.cfg.Incomplete,
		precise:    o.cfg.PreciseBar,
		pretty:     o.cfg.PrettyTime,
		timeOpts:   o.cfg.timeOptions(),
		display:    o.cfg.Display,
		width:      o.cfg.Width,
	}
	elapsed := now.Sub(p.start)
	columns := p.columns()
	lines := strings.Split(image, "\n")

	var rendered []string
	if p.cfg.Horizontal {
		rendered = append(lines, f.line(elapsed, columns))
	} else {
		var ok bool
		rendered, ok = p.vertical(&f, lines, elapsed, columns)
		if !ok {
			p.log.Tracef("image wider than %d columns, frame skipped", columns)
			if end {
				return p.end()
			}
			return nil
		}
	}

	str := strings.Join(rendered, lineBreak)
	if str != p.lastStr {
		if err := p.write(cursorUpClear(p.lastRows) + str + hideCursor); err != nil {
			return err
		}
		p.lastStr = str
		p.lastRows = len(rendered)
	}

	if end {
		return p.end()
	}
	return nil
}

// vertical pads every image line to the terminal width, ending it with one
// glyph of the progress column, and overlays the status on the last line.
// It fails when a line leaves less than two free columns.
func (p *FunnyProgressBar) vertical(f *frame, lines []string, elapsed time.Duration, columns int) ([]string, bool) {
	filled := int(math.Floor(float64(len(lines)) * float64(f.completed) / float64(f.total)))
	empty := len(lines) - MinInt(filled, len(lines))

	out := make([]string, len(lines))
	for i, line := range lines {
		available := columns - VisibleLen(line)
		if available < 2 {
			return nil, false
		}
		glyph := f.complete
		if i < empty {
			glyph = f.incomplete
		}
		out[i] = line + repeat(" ", available-2) + glyph + " "
	}

	tokens := f.tokens(elapsed)
	tokens[TokenBar] = ""
	status := RenderTemplate(f.display, tokens)
	last := len(out) - 1
	out[last] = fmt.Sprintf("%s%s ", truncateVisible(out[last], columns-VisibleLen(status)-1), status)
	return out, true
}

// Console writes message above the image and redraws it below.
func (p *FunnyProgressBar) Console(message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	tail := cursorTail(p.ended)
	return p.write(cursorUpClear(p.lastRows) + message + tail + lineBreak + p.lastStr + tail)
}

func (p *FunnyProgressBar) End() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.end()
}

func (p *FunnyProgressBar) end() error {
	if p.ended {
		return nil
	}
	p.ended = true
	p.log.Debug("funny bar ended")

	seq := lineBreak
	if p.cfg.Clear {
		seq = cursorUpClear(p.lastRows)
	}
	return p.write(seq + showCursor)
}

func (p *FunnyProgressBar) Ended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ended
}
