package stats

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// Int formats n with thousands separators.
func Int(n int) string {
	return message.NewPrinter(lang).Sprintf("%d", n)
}

// Rows returns the summary as ordered key/value pairs for Table.
func (s Summary) Rows() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	vals := map[string]string{
		"Rounds":   p.Sprintf("%d", s.Count),
		"Mean":     p.Sprintf("%.1f", s.Mean),
		"Std Dev":  p.Sprintf("%.1f", s.StdDev),
		"Mean 95%": p.Sprintf("[%.1f, %.1f]", s.MeanCI.Lo, s.MeanCI.Hi),
		"Min":      p.Sprintf("%.0f", s.Min),
		"Median":   p.Sprintf("%.0f", s.Median),
		"P90":      p.Sprintf("%.0f", s.P90),
		"Max":      p.Sprintf("%.0f", s.Max),
	}
	keys := []string{"Rounds", "Mean", "Std Dev", "Mean 95%", "Min", "Median", "P90", "Max"}
	return keys, vals
}

// Line is a one-line rendering of the summary for narrow displays.
func (s Summary) Line() string {
	if s.Count == 0 {
		return "no rounds"
	}
	return message.NewPrinter(lang).Sprintf("%d rounds  mean %.0f  sd %.0f  median %.0f  best %.0f",
		s.Count, s.Mean, s.StdDev, s.Median, s.Max)
}

// Duration formats an elapsed time with a throughput figure in unit/sec.
func Duration(d time.Duration, count int, unit string) string {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	rate := int(float64(count) / sec)
	return p.Sprintf("used: %.2f seconds, %d %s/sec", sec, rate, unit)
}

// Table renders keys and their values as a boxed two-column table with a
// centered title. Widths are measured in terminal cells.
func Table(title string, keys []string, vals map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2

	inner := keyW + valW + 1
	titleW := runewidth.StringWidth(title)
	if titleW > inner {
		valW += titleW - inner
		inner = titleW
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	left := (inner - titleW) / 2
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(inner-titleW-left) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		v := vals[k]
		b.WriteString("| " + k + blank(keyW-2-runewidth.StringWidth(k)) + " | " +
			v + blank(valW-2-runewidth.StringWidth(v)) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
