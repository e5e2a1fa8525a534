package core

// DataType is a source column type that can back a date dimension.
type DataType int

// Datetime-compatible column types.
const (
	DataTypeDate DataType = iota
	DataTypeTimestamp
	DataTypeTimestampTZ
)

var dataTypeNames = [...]string{
	DataTypeDate:        "DATE",
	DataTypeTimestamp:   "TIMESTAMP",
	DataTypeTimestampTZ: "TIMESTAMPTZ",
}

// String returns the column type name.
func (t DataType) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return dataTypeNames[t]
}

// IsValid reports whether t is one of the declared types.
func (t DataType) IsValid() bool {
	return t >= DataTypeDate && t <= DataTypeTimestampTZ
}

// IsTimestamp reports whether t carries a time-of-day component.
func (t DataType) IsTimestamp() bool {
	return t == DataTypeTimestamp || t == DataTypeTimestampTZ
}

// ParseDataType converts a column type name to a DataType.
// Matching is exact: "timestamp" is not a datetime type.
func ParseDataType(s string) (DataType, bool) {
	for i, name := range dataTypeNames {
		if name == s {
			return DataType(i), true
		}
	}
	return DataTypeDate, false
}

// DatetimeDataTypes returns the column types usable as date dimensions.
func DatetimeDataTypes() []DataType {
	return []DataType{DataTypeDate, DataTypeTimestamp, DataTypeTimestampTZ}
}

// TimestampDataTypes returns the column types with time-of-day resolution.
func TimestampDataTypes() []DataType {
	return []DataType{DataTypeTimestamp, DataTypeTimestampTZ}
}

// IsDatetimeType reports whether a source column type name is datetime compatible.
func IsDatetimeType(name string) bool {
	_, ok := ParseDataType(name)
	return ok
}

// IsTimestampType reports whether a source column type name is timestamp compatible.
func IsTimestampType(name string) bool {
	t, ok := ParseDataType(name)
	return ok && t.IsTimestamp()
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, &UnknownLiteralError{Enum: "data type", Value: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(text []byte) error {
	v, ok := ParseDataType(string(text))
	if !ok {
		return &UnknownLiteralError{Enum: "data type", Value: string(text)}
	}
	*t = v
	return nil
}
