package core

// =============================================================================
// DateGranularity
// =============================================================================

// DateGranularity is a time-unit resolution available on date attributes.
type DateGranularity int

// Granularities valid for date-typed attributes.
const (
	GranularityDay DateGranularity = iota
	GranularityWeek
	GranularityMonth
	GranularityQuarter
	GranularityYear
	GranularityDayOfWeek
	GranularityDayOfMonth
	GranularityDayOfYear
	GranularityWeekOfYear
	GranularityMonthOfYear
	GranularityQuarterOfYear
)

var dateGranularityNames = [...]string{
	GranularityDay:           "DAY",
	GranularityWeek:          "WEEK",
	GranularityMonth:         "MONTH",
	GranularityQuarter:       "QUARTER",
	GranularityYear:          "YEAR",
	GranularityDayOfWeek:     "DAY_OF_WEEK",
	GranularityDayOfMonth:    "DAY_OF_MONTH",
	GranularityDayOfYear:     "DAY_OF_YEAR",
	GranularityWeekOfYear:    "WEEK_OF_YEAR",
	GranularityMonthOfYear:   "MONTH_OF_YEAR",
	GranularityQuarterOfYear: "QUARTER_OF_YEAR",
}

// String returns the granularity label.
func (g DateGranularity) String() string {
	if !g.IsValid() {
		return "unknown"
	}
	return dateGranularityNames[g]
}

// IsValid reports whether g is one of the declared granularities.
func (g DateGranularity) IsValid() bool {
	return g >= GranularityDay && g <= GranularityQuarterOfYear
}

// ParseDateGranularity converts a label to a DateGranularity.
// Returns the granularity and true if valid, or GranularityDay and false if invalid.
func ParseDateGranularity(s string) (DateGranularity, bool) {
	for i, name := range dateGranularityNames {
		if name == s {
			return DateGranularity(i), true
		}
	}
	return GranularityDay, false
}

// DateGranularityValues returns every date granularity in declaration order.
func DateGranularityValues() []DateGranularity {
	out := make([]DateGranularity, len(dateGranularityNames))
	for i := range dateGranularityNames {
		out[i] = DateGranularity(i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (g DateGranularity) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, &UnknownLiteralError{Enum: "date granularity", Value: g.String()}
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *DateGranularity) UnmarshalText(text []byte) error {
	v, ok := ParseDateGranularity(string(text))
	if !ok {
		return &UnknownLiteralError{Enum: "date granularity", Value: string(text)}
	}
	*g = v
	return nil
}

// =============================================================================
// TimeGranularity
// =============================================================================

// TimeGranularity is a resolution available only on timestamp attributes.
type TimeGranularity int

// Granularities valid for timestamp-typed attributes in addition to the
// date granularities.
const (
	GranularityMinute TimeGranularity = iota
	GranularityHour
	GranularityMinuteOfHour
	GranularityHourOfDay
)

var timeGranularityNames = [...]string{
	GranularityMinute:       "MINUTE",
	GranularityHour:         "HOUR",
	GranularityMinuteOfHour: "MINUTE_OF_HOUR",
	GranularityHourOfDay:    "HOUR_OF_DAY",
}

// String returns the granularity label.
func (g TimeGranularity) String() string {
	if !g.IsValid() {
		return "unknown"
	}
	return timeGranularityNames[g]
}

// IsValid reports whether g is one of the declared granularities.
func (g TimeGranularity) IsValid() bool {
	return g >= GranularityMinute && g <= GranularityHourOfDay
}

// ParseTimeGranularity converts a label to a TimeGranularity.
// Returns the granularity and true if valid, or GranularityMinute and false if invalid.
func ParseTimeGranularity(s string) (TimeGranularity, bool) {
	for i, name := range timeGranularityNames {
		if name == s {
			return TimeGranularity(i), true
		}
	}
	return GranularityMinute, false
}

// TimeGranularityValues returns every time granularity in declaration order.
func TimeGranularityValues() []TimeGranularity {
	out := make([]TimeGranularity, len(timeGranularityNames))
	for i := range timeGranularityNames {
		out[i] = TimeGranularity(i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (g TimeGranularity) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, &UnknownLiteralError{Enum: "time granularity", Value: g.String()}
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *TimeGranularity) UnmarshalText(text []byte) error {
	v, ok := ParseTimeGranularity(string(text))
	if !ok {
		return &UnknownLiteralError{Enum: "time granularity", Value: string(text)}
	}
	*g = v
	return nil
}

// GranularitiesFor returns the granularity labels a date attribute of the
// given data type supports. Dates get the date granularities; timestamps get
// the date granularities followed by the time granularities.
// Returns nil for an invalid data type.
func GranularitiesFor(t DataType) []string {
	if !t.IsValid() {
		return nil
	}
	out := make([]string, 0, len(dateGranularityNames)+len(timeGranularityNames))
	out = append(out, dateGranularityNames[:]...)
	if t.IsTimestamp() {
		out = append(out, timeGranularityNames[:]...)
	}
	return out
}
