package events

import "github.com/rs/zerolog"

// ZerologSink is the default sink for the CLI: it turns every emitted event
// into one structured, leveled log line instead of a format string.
type ZerologSink struct {
	log zerolog.Logger
}

func NewZerologSink(log zerolog.Logger) *ZerologSink {
	return &ZerologSink{log: log}
}

func (s *ZerologSink) Emit(r Record) {
	ev := s.eventForSeverity(r.Severity)
	ev.Str("event_id", r.ID).
		Str("correlation_id", r.CorrelationID).
		Interface("args", r.Args).
		Msg(r.Template)
}

func (s *ZerologSink) eventForSeverity(sev Severity) *zerolog.Event {
	switch sev {
	case Warning:
		return s.log.Warn()
	case Error:
		return s.log.Error()
	default:
		return s.log.Info()
	}
}
