package toolchain

import "strings"

const defaultAR = "ar"

// findAR picks the archiver for the target. It never fails: when nothing
// better can be found it falls back to plain "ar", so a downstream build
// failure names an inspectable binary instead of an opaque error.
func findAR(sys System, host, target string) string {
	if v, ok := resolveVar(sys, host, target, "AR"); ok {
		return v
	}

	switch {
	case strings.Contains(target, "android"):
		// NDK toolchain binaries are prefixed with "arm", not "armv7",
		// even when the triple says armv7.
		return strings.ReplaceAll(target, "armv7", "arm") + "-ar"
	case strings.Contains(target, "emscripten"):
		return "emar"
	case strings.Contains(target, "msvc"):
		return "lib.exe"
	case strings.Contains(target, "illumos"):
		// The native ar on illumos takes non-standard flags, but the OS
		// bundles a GNU-compatible variant. Use that to match other
		// Unix systems.
		return "gar"
	case host != target:
		prefix, ok := prefixForTarget(sys, target)
		if !ok {
			return defaultAR
		}
		if targetAR := prefix + "-ar"; sys.CanExecute(targetAR) {
			return targetAR
		}
		return defaultAR
	default:
		return defaultAR
	}
}

// resolveVar probes the conventional environment variable spellings for a
// tool override, most specific first: BASE_<target>, BASE_<target with
// hyphens replaced by underscores>, HOST_BASE or TARGET_BASE depending on
// whether this is a native build, then bare BASE. The first variable that
// is set wins, even if its value is empty.
func resolveVar(sys System, host, target, base string) (string, bool) {
	kind := "TARGET"
	if host == target {
		kind = "HOST"
	}

	names := [...]string{
		base + "_" + target,
		base + "_" + strings.ReplaceAll(target, "-", "_"),
		kind + "_" + base,
		base,
	}
	for _, name := range names {
		if v, ok := sys.Getenv(name); ok {
			return v, true
		}
	}
	return "", false
}
