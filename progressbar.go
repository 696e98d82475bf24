package progressw

import (
	"io"
	"strings"
	"sync"
	"time"
)

// RenderOption overrides the stored configuration for one render call.
type RenderOption func(o *override)

type override struct {
	cfg  Config
	text string
}

// WithTotal sets the total of one render.
func WithTotal(total int) RenderOption {
	return func(o *override) { o.cfg.Total = total }
}

// WithTitle replaces the :title value for one render.
func WithTitle(title string) RenderOption {
	return func(o *override) { o.cfg.Title = title }
}

// WithText sets the :text value for one render.
func WithText(text string) RenderOption {
	return func(o *override) { o.text = text }
}

// WithComplete replaces the complete glyph for one render.
func WithComplete(glyph string) RenderOption {
	return func(o *override) { o.cfg.Complete = glyph }
}

// WithIncomplete replaces the incomplete glyph for one render.
func WithIncomplete(glyph string) RenderOption {
	return func(o *override) { o.cfg.Incomplete = glyph }
}

// WithPreciseBar sets the partial glyphs, from least to most filled, for one render.
func WithPreciseBar(glyphs ...string) RenderOption {
	return func(o *override) { o.cfg.PreciseBar = glyphs }
}

// WithTimeOptions replaces the pretty time options for one render.
func WithTimeOptions(opts TimeOptions) RenderOption {
	opts = opts.clone()
	return func(o *override) { o.cfg.TimeOptions = &opts }
}

func applyOverrides(cfg Config, opts []RenderOption) override {
	o := override{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ProgressBar draws a single progress line in place.
type ProgressBar struct {
	screen
	cfg Config

	mu         sync.Mutex
	start      time.Time
	lastRender time.Time
	lastStr    string
	lastLen    int
	ended      bool
}

// NewProgressBar builds a bar drawing on out, os.Stdout when out is nil.
func NewProgressBar(out io.Writer, cfg Config, opts ...Option) *ProgressBar {
	b := &ProgressBar{
		screen: newScreen(out, "single", opts),
		cfg:    cfg.withDefaults(DefaultDisplay),
	}
	b.start = b.now()
	b.log.Debugf("bar created, total:%d width:%d interval:%s", b.cfg.Total, b.cfg.Width, b.cfg.Interval)
	return b
}

// Render draws the bar for completed out of the total given by WithTotal or
// the config. Frames closer than the configured interval are dropped unless
// the bar is complete, and reaching the total ends the bar.
func (b *ProgressBar) Render(completed int, opts ...RenderOption) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ended {
		b.log.Debug("render called after end")
		return nil
	}
	o := applyOverrides(b.cfg, opts)
	total := o.cfg.Total
	if err := validate(completed, total); err != nil {
		return err
	}

	now := b.now()
	if now.Sub(b.lastRender) < b.cfg.Interval && completed < total {
		b.log.Tracef("frame throttled, completed:%d", completed)
		return nil
	}
	b.lastRender = now

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
	line := f.line(now.Sub(b.start), b.columns())
	if line != b.lastStr {
		if err := b.write(cursorReturn + padTo(line, b.lastLen) + hideCursor); err != nil {
			return err
		}
		b.lastStr = line
		b.lastLen = VisibleLen(line)
	}

	if completed >= total {
		return b.end()
	}
	return nil
}

// Console writes message on its own line above the bar and redraws the bar
// below it. After End the cursor is left visible.
func (b *ProgressBar) Console(message string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tail := cursorTail(b.ended)
	var sb strings.Builder
	sb.WriteString(eraseLine)
	sb.WriteString(cursorReturn + message + tail)
	sb.WriteString(crlf)
	sb.WriteString(cursorReturn + b.lastStr + tail)
	return b.write(sb.String())
}

// End stops the bar before completion. Later calls and renders are no-ops.
func (b *ProgressBar) End() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.end()
}

func (b *ProgressBar) end() error {
	if b.ended {
		return nil
	}
	b.ended = true
	b.log.Debug("bar ended")

	seq := lineBreak
	if b.cfg.Clear {
		seq = cursorReturn + eraseLine
	}
	return b.write(seq + showCursor)
}

// Ended reports whether the bar reached its total or End was called.
func (b *ProgressBar) Ended() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ended
}
