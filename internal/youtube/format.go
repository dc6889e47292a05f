package youtube

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration renders an ISO-8601 duration token (PT[nH][nM][nS]) as
// H:MM:SS, or MM:SS when there is no hour component. Minutes and seconds
// are zero-padded to two digits. Absent or unparsable input yields nil.
func FormatDuration(iso string) *string {
	if iso == "" {
		return nil
	}
	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return nil
	}
	hours, minutes, seconds := m[1], m[2], m[3]

	var sb strings.Builder
	if hours != "" {
		sb.WriteString(hours)
		sb.WriteByte(':')
	}
	sb.WriteString(pad2(minutes))
	sb.WriteByte(':')
	sb.WriteString(pad2(seconds))

	formatted := sb.String()
	return &formatted
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

// FormatCount renders a numeric count string with grouping separators.
// Absent or non-numeric input yields nil.
func FormatCount(raw string) *string {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	formatted := humanize.Comma(n)
	return &formatted
}
