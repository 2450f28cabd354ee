package profile

// Profiler describes one profiling run.
type Profiler struct {
	// Mode selects what to profile; see Modes. Empty disables profiling.
	Mode string
	// Path is the directory profile files are written to.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a handle to stop it. Start and Stop are
// always safe to call: when Mode is empty, or the binary was built without
// the pprof tag, both do nothing.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}
	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
