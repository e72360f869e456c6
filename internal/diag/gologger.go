package diag

import "github.com/projectdiscovery/gologger"

// GologgerSink reports Diagnostics through the process-wide gologger
// logger, at Warning or Error level according to severity.
type GologgerSink struct{}

// NewGologgerSink returns a Sink that writes through gologger.
func NewGologgerSink() GologgerSink {
	return GologgerSink{}
}

func (GologgerSink) Report(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		gologger.Error().Msgf("%s: %s", d.Stage, d.Message)
	default:
		gologger.Warning().Msgf("%s: %s", d.Stage, d.Message)
	}
}
