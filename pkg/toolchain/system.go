package toolchain

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// A System provides the small slice of the operating system the resolver
// needs: environment lookups, PATH enumeration and binary probing.
// Substituting an in-memory implementation keeps resolution hermetic in
// tests.
type System interface {
	// Getenv returns the value of an environment variable and whether it
	// is set at all. A set-but-empty variable still counts as set.
	Getenv(name string) (string, bool)
	// PathEntries returns the directories of PATH in search order.
	PathEntries() []string
	// Exists reports whether path names an existing file.
	Exists(path string) bool
	// CanExecute reports whether the named binary can be invoked at all.
	// The binary exiting with a non-zero status still counts as
	// invocable; only a failure to launch it does not.
	CanExecute(name string) bool
	// ExeSuffix returns the executable file name suffix, ".exe" on
	// Windows and empty elsewhere.
	ExeSuffix() string
}

type osSystem struct{}

// DefaultSystem returns a System backed by the real process environment
// and filesystem.
func DefaultSystem() System { return osSystem{} }

func (osSystem) Getenv(name string) (string, bool) { return os.LookupEnv(name) }

func (osSystem) PathEntries() []string {
	path, ok := os.LookupEnv("PATH")
	if !ok {
		return nil
	}
	return filepath.SplitList(path)
}

func (osSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osSystem) CanExecute(name string) bool {
	err := exec.Command(name).Run()
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func (osSystem) ExeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
