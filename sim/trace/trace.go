package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures all request routings and eviction decisions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Level     TraceLevel
	Requests  []RequestRecord
	Evictions []EvictionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:     level,
		Requests:  make([]RequestRecord, 0),
		Evictions: make([]EvictionRecord, 0),
	}
}

// Enabled reports whether records should be captured.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Level == TraceLevelDecisions
}

// RecordRequest appends a request outcome record.
func (st *SimulationTrace) RecordRequest(record RequestRecord) {
	st.Requests = append(st.Requests, record)
}

// RecordEviction appends an eviction decision record.
func (st *SimulationTrace) RecordEviction(record EvictionRecord) {
	st.Evictions = append(st.Evictions, record)
}
