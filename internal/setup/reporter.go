package setup

// Reporter receives progress from the workflow.
type Reporter interface {
	Section(title string)
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Section(string)         {}
func (nopReporter) Info(string, ...any)    {}
func (nopReporter) Success(string, ...any) {}
func (nopReporter) Warn(string, ...any)    {}
