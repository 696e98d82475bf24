package progressw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const base = 111

func TestPrettyTime(t *testing.T) {
	cases := []struct {
		name string
		opts TimeOptions
		want []string
	}{
		{
			name: "default",
			opts: DefaultTimeOptions(),
			want: []string{"0.1s", "1.1s", "11.1s", "1m51.0s", "18m30.0s", "3h5m0.0s", "1d6h50m0.0s", "12d20h20m0.0s"},
		},
		{
			name: "withSpaces",
			opts: TimeOptions{WithSpaces: true},
			want: []string{"0.1s", "1.1s", "11.1s", "1m 51.0s", "18m 30.0s", "3h 5m 0.0s", "1d 6h 50m 0.0s", "12d 20h 20m 0.0s"},
		},
		{
			name: "toFixedVal",
			opts: TimeOptions{ToFixedVal: Decimals(0)},
			want: []string{"0s", "1s", "11s", "1m51s", "18m30s", "3h5m0s", "1d6h50m0s", "12d20h20m0s"},
		},
		{
			name: "longFormat",
			opts: TimeOptions{LongFormat: true},
			want: []string{
				"0.1second", "1.1seconds", "11.1seconds", "1minute51.0seconds", "18minutes30.0seconds",
				"3hours5minutes0.0second", "1day6hours50minutes0.0second", "12days20hours20minutes0.0second",
			},
		},
		{
			name: "withSpaces and toFixedVal",
			opts: TimeOptions{WithSpaces: true, ToFixedVal: Decimals(0)},
			want: []string{"0s", "1s", "11s", "1m 51s", "18m 30s", "3h 5m 0s", "1d 6h 50m 0s", "12d 20h 20m 0s"},
		},
		{
			name: "withSpaces and toFixedVal and longFormat",
			opts: TimeOptions{LongFormat: true, WithSpaces: true, ToFixedVal: Decimals(0)},
			want: []string{
				"0second", "1second", "11seconds", "1minute 51seconds", "18minutes 30seconds",
				"3hours 5minutes 0second", "1day 6hours 50minutes 0second", "12days 20hours 20minutes 0second",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ms := float64(base)
			for _, want := range c.want {
				assert.Equal(t, want, PrettyTime(ms, c.opts), "ms:%v", ms)
				ms *= 10
			}
		})
	}
}

func TestPrettyTimeLongFormatPlural(t *testing.T) {
	long := TimeOptions{LongFormat: true}
	assert.Equal(t, "1.0second", PrettyTime(1000, long))
	assert.Equal(t, "1.5seconds", PrettyTime(1500, long))
	assert.Equal(t, "2.0seconds", PrettyTime(2000, long))
	assert.Equal(t, "1minute1.0second", PrettyTime(61000, long))
	assert.Equal(t, "2minutes0.0second", PrettyTime(120000, long))

	noDecimals := TimeOptions{LongFormat: true, ToFixedVal: Decimals(0)}
	assert.Equal(t, "2second", PrettyTime(1500, noDecimals))
	assert.Equal(t, "1second", PrettyTime(1200, noDecimals))
}

func TestPrettyTimeUnsetDecimals(t *testing.T) {
	assert.Equal(t, "1m 51.0s", PrettyTime(111000, TimeOptions{WithSpaces: true}))
	assert.Equal(t, "1.5seconds", PrettyTime(1500, TimeOptions{LongFormat: true}))
	assert.Equal(t, "1.25s", PrettyTime(1250, TimeOptions{ToFixedVal: Decimals(2)}))
	assert.Equal(t, "2s", PrettyTime(1500, TimeOptions{ToFixedVal: Decimals(-1)}))
}

func TestPrettyTimeNegative(t *testing.T) {
	assert.Equal(t, "0.0s", PrettyTime(-5, DefaultTimeOptions()))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.0s", formatSeconds(0))
	assert.Equal(t, "1.5s", formatSeconds(1500))
	assert.Equal(t, "90.0s", formatSeconds(90000))
}
