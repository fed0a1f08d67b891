package scoring

import (
	"strings"
	"time"
)

// Time-of-day layout for the punctuality comparison. Zero-padded 24-hour
// strings sort lexicographically in chronological order.
const clockLayout = "15:04"

// Timestamp layouts accepted for reporting times that embed a full date.
var reportingTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// IsPunctual reports whether a daily reporting time is at or before the
// punctuality cutoff. The value may be "HH:mm" or a full timestamp, from
// which the time of day is extracted. Missing or malformed input is simply
// not punctual.
func (s *Scorer) IsPunctual(reportingTime string) bool {
	if reportingTime == "" {
		return false
	}

	clock := reportingTime
	if strings.Contains(reportingTime, "T") {
		ts, err := parseReportingTimestamp(reportingTime)
		if err != nil {
			return false
		}
		clock = ts.Format(clockLayout)
	} else if _, err := time.Parse(clockLayout, reportingTime); err != nil {
		return false
	}

	return clock <= s.cfg.PunctualityCutoff
}

func parseReportingTimestamp(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range reportingTimestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
