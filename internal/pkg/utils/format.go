package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// groupThousands inserts "," every three digits of a plain decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}

// FormatNumber renders v with thousands separators and at most decimals fraction digits.
func FormatNumber(v float64, decimals int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return groupThousands(decimal.NewFromFloat(v).Round(decimals).String())
}

// FormatInteger renders n with thousands separators.
func FormatInteger(n uint64) string {
	return groupThousands(fmt.Sprintf("%d", n))
}

// FormatNumberString groups a decimal string such as a gas amount. Non-numbers are returned unchanged.
func FormatNumberString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return groupThousands(d.String())
}

// FormatCurrency renders a USD amount in compact form: $1.23B, $4.50M, $7.00K, $12.34.
func FormatCurrency(v float64) string {
	d := decimal.NewFromFloat(v)
	abs := d.Abs()
	units := []struct {
		suffix string
		size   decimal.Decimal
	}{
		{"B", decimal.New(1, 9)},
		{"M", decimal.New(1, 6)},
		{"K", decimal.New(1, 3)},
	}
	for _, u := range units {
		if abs.GreaterThanOrEqual(u.size) {
			return "$" + d.Div(u.size).StringFixed(2) + u.suffix
		}
	}
	return "$" + d.StringFixed(2)
}

// FormatDuration renders a millisecond duration: 850ms, 5.0s, 2m 5s.
func FormatDuration(ms float64) string {
	switch {
	case ms < 1000:
		return fmt.Sprintf("%.0fms", ms)
	case ms < 60_000:
		return fmt.Sprintf("%.1fs", ms/1000)
	default:
		d := time.Duration(ms) * time.Millisecond
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

// FormatChange renders a growth percentage with an explicit sign for positive values.
func FormatChange(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

// TruncateAddress shortens a hex string to 0x1234...abcd. Short input is returned unchanged.
func TruncateAddress(addr string) string {
	const head, tail = 6, 4
	if len(addr) <= head+tail+3 {
		return addr
	}
	return addr[:head] + "..." + addr[len(addr)-tail:]
}

// Capitalize upper-cases the first letter of an ASCII word.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TimeAgo renders the distance between a unix timestamp and now: "3 minutes ago", "in 2 hours".
func TimeAgo(unixSeconds int64, now time.Time) string {
	d := now.Sub(time.Unix(unixSeconds, 0))
	future := d < 0
	if future {
		d = -d
	}

	var text string
	switch {
	case d < time.Minute:
		text = "less than a minute"
	case d < time.Hour:
		text = plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		text = plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		text = plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		text = plural(int(d/(30*24*time.Hour)), "month")
	default:
		text = plural(int(d/(365*24*time.Hour)), "year")
	}

	if future {
		return "in " + text
	}
	return text + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
