package progressw

import (
	"math"
	"strconv"
	"strings"
)

var (
	shortUnits = []string{"s", "m", "h", "d"}
	longUnits  = []string{"second", "minute", "hour", "day"}
)

// TimeOptions controls how PrettyTime renders a duration.
type TimeOptions struct {
	// WithSpaces separates units with a space: `1d 2h 3m 5.0s` instead of `1d2h3m5.0s`
	WithSpaces bool `yaml:"with_spaces"`
	// ToFixedVal is the number of decimals used for the seconds component only,
	// nil means one decimal
	ToFixedVal *int `yaml:"to_fixed_val,omitempty"`
	// LongFormat spells units out: `1day 2hours 3minutes 5.0seconds`
	LongFormat bool `yaml:"long_format"`
}

// DefaultTimeOptions is compact, unspaced, one decimal for seconds.
func DefaultTimeOptions() TimeOptions {
	return TimeOptions{ToFixedVal: Decimals(1)}
}

// Decimals returns a ToFixedVal of n.
func Decimals(n int) *int {
	return &n
}

func (o TimeOptions) decimals() int {
	if o.ToFixedVal == nil {
		return 1
	}
	return MaxInt(*o.ToFixedVal, 0)
}

func (o TimeOptions) clone() TimeOptions {
	if o.ToFixedVal != nil {
		o.ToFixedVal = Decimals(*o.ToFixedVal)
	}
	return o
}

// PrettyTime converts a duration in milliseconds to a human readable string
// such as `5d1h20m30.0s`. Leading zero units are omitted, trailing ones are kept.
func PrettyTime(milliseconds float64, opts TimeOptions) string {
	if milliseconds < 0 {
		milliseconds = 0
	}
	second := milliseconds / 1000
	if second < 60 {
		return unitToString(second, 0, opts)
	}
	minute := math.Floor(second / 60)
	second = math.Mod(second, 60)
	if minute < 60 {
		return unitToString(minute, 1, opts) + unitToString(second, 0, opts)
	}
	hour := math.Floor(minute / 60)
	minute = math.Mod(minute, 60)
	if hour < 24 {
		return unitToString(hour, 2, opts) + unitToString(minute, 1, opts) +
			unitToString(second, 0, opts)
	}
	day := math.Floor(hour / 24)
	hour = math.Mod(hour, 24)
	return unitToString(day, 3, opts) + unitToString(hour, 2, opts) +
		unitToString(minute, 1, opts) + unitToString(second, 0, opts)
}

func unitToString(val float64, i int, opts TimeOptions) string {
	units := shortUnits
	if opts.LongFormat {
		units = longUnits
	}
	unit := units[i]
	decimals := opts.decimals()
	// 1.5 pluralizes, a bare 1 does not
	if opts.LongFormat && (val >= 2 || (val > 1 && decimals > 0)) {
		unit += "s"
	}
	if i == 0 {
		return strconv.FormatFloat(val, 'f', decimals, 64) + unit
	}
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(val, 'f', 0, 64))
	b.WriteString(unit)
	if opts.WithSpaces {
		b.WriteByte(' ')
	}
	return b.String()
}

// formatSeconds is the plain `12.3s` rendering used when pretty time is off.
func formatSeconds(milliseconds float64) string {
	return strconv.FormatFloat(milliseconds/1000, 'f', 1, 64) + "s"
}
