package toolchain

// fakeSystem is an in-memory System so resolution tests never touch the
// real environment, PATH or filesystem.
type fakeSystem struct {
	env       map[string]string
	path      []string
	files     map[string]bool
	runnable  map[string]bool
	exeSuffix string
}

var _ System = fakeSystem{}

func (s fakeSystem) Getenv(name string) (string, bool) {
	v, ok := s.env[name]
	return v, ok
}

func (s fakeSystem) PathEntries() []string { return s.path }

func (s fakeSystem) Exists(path string) bool { return s.files[path] }

func (s fakeSystem) CanExecute(name string) bool { return s.runnable[name] }

func (s fakeSystem) ExeSuffix() string { return s.exeSuffix }
