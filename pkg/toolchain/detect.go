package toolchain

import "strings"

// A DetectRequest describes one compiler lookup. Requests are single-use
// values: configure one, call Detect, and build a fresh request for the
// next lookup. OptLevel, Debug and Warnings describe the build the
// compiler is detected for; the zero value (no optimization, no debug
// info, no warnings) matches how a build-description generator probes
// the toolchain.
type DetectRequest struct {
	Host     string
	Target   string
	OptLevel int
	Debug    bool
	Warnings bool
	// CPP selects the C++ compiler instead of the C one.
	CPP bool
}

// Detect returns the best-guess compiler for the request. Like archiver
// discovery it never fails: the fallback is the conventional native
// compiler name, which at worst yields an actionable "not found" from the
// build instead of an error here.
func (r DetectRequest) Detect(sys System) string {
	base := "CC"
	if r.CPP {
		base = "CXX"
	}
	if v, ok := resolveVar(sys, r.Host, r.Target, base); ok {
		return v
	}

	target := r.Target
	switch {
	case strings.Contains(target, "emscripten"):
		if r.CPP {
			return "em++"
		}
		return "emcc"
	case strings.Contains(target, "msvc"):
		return "cl.exe"
	case strings.Contains(target, "android"):
		// Same armv7 -> arm rename as the rest of the NDK tools.
		name := strings.ReplaceAll(target, "armv7", "arm")
		if r.CPP {
			return name + "-clang++"
		}
		return name + "-clang"
	case r.Host != target:
		prefix, ok := prefixForTarget(sys, target)
		if !ok {
			break
		}
		if r.CPP {
			return prefix + "-g++"
		}
		return prefix + "-gcc"
	}

	if strings.Contains(target, "windows") {
		if r.CPP {
			return "g++"
		}
		return "gcc"
	}
	if r.CPP {
		return "c++"
	}
	return "cc"
}
