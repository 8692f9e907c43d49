package diag

// Severity ranks diagnostics. The checker and the driver only emit SevError;
// bags and renderers accept the lower levels as well.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// IsError reports whether s fails a check.
func (s Severity) IsError() bool { return s >= SevError }
