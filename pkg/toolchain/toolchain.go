package toolchain

import "fmt"

// A Toolchain holds the resolved native build tools for a (host, target)
// pair. The zero value is not usable; construct one with New.
//
// The target is fixed at construction. Every other field may be
// overridden through the setters; values are taken verbatim, so an
// invalid override surfaces only when the downstream build uses it.
type Toolchain struct {
	sys System

	host    string
	target  string
	sysroot string // CMAKE_SYSROOT; empty unless set
	cc      string // CMAKE_C_COMPILER
	cxx     string // CMAKE_CXX_COMPILER
	ar      string // CMAKE_AR
	ranlib  string // CMAKE_RANLIB
}

// New resolves a toolchain for the given target triple. The host triple
// is derived from the running binary; if it cannot be determined there is
// no sensible way to continue and an error is returned. Every other
// lookup degrades to a conventional default instead of failing, so a
// missing cross toolchain shows up later as an actionable "not found"
// rather than an error here.
func New(target string) (*Toolchain, error) {
	return NewWithSystem(target, DefaultSystem())
}

// NewWithSystem is like New but reads the environment, PATH and
// filesystem through the provided System.
func NewWithSystem(target string, sys System) (*Toolchain, error) {
	host, err := HostTriple()
	if err != nil {
		return nil, fmt.Errorf("toolchain: %w", err)
	}

	// Detection requests are single-use, so the C++ lookup gets its own
	// independently configured request.
	ccReq := DetectRequest{Host: host, Target: target}
	cxxReq := DetectRequest{Host: host, Target: target, CPP: true}

	t := &Toolchain{
		sys:    sys,
		host:   host,
		target: target,
		cc:     ccReq.Detect(sys),
		cxx:    cxxReq.Detect(sys),
		ar:     "ar",
		ranlib: "ranlib",
	}
	t.ar = findAR(sys, host, target)

	return t, nil
}

// Host returns the triple of the machine the build runs on.
func (t *Toolchain) Host() string { return t.host }

// Target returns the triple the build produces output for.
func (t *Toolchain) Target() string { return t.target }

// SetSysroot sets the sysroot passed to the build.
func (t *Toolchain) SetSysroot(path string) *Toolchain {
	t.sysroot = path
	return t
}

// Sysroot returns the sysroot, or an empty string when none is set.
func (t *Toolchain) Sysroot() string { return t.sysroot }

// SetCC overrides the C compiler.
func (t *Toolchain) SetCC(path string) *Toolchain {
	t.cc = path
	return t
}

// CC returns the C compiler.
func (t *Toolchain) CC() string { return t.cc }

// SetCXX overrides the C++ compiler.
func (t *Toolchain) SetCXX(path string) *Toolchain {
	t.cxx = path
	return t
}

// CXX returns the C++ compiler.
func (t *Toolchain) CXX() string { return t.cxx }

// SetAR overrides the archiver.
func (t *Toolchain) SetAR(path string) *Toolchain {
	t.ar = path
	return t
}

// AR returns the archiver.
func (t *Toolchain) AR() string { return t.ar }

// SetRanlib overrides ranlib.
func (t *Toolchain) SetRanlib(path string) *Toolchain {
	t.ranlib = path
	return t
}

// Ranlib returns ranlib.
func (t *Toolchain) Ranlib() string { return t.ranlib }
