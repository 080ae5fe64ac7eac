package toolchain

import (
	"fmt"
	"runtime"
)

// hostArches maps GOARCH values to the CPU part of a GNU triple.
var hostArches = map[string]string{
	"386":      "i686",
	"amd64":    "x86_64",
	"arm":      "armv7",
	"arm64":    "aarch64",
	"mips":     "mips",
	"mipsle":   "mipsel",
	"mips64":   "mips64",
	"mips64le": "mips64el",
	"ppc64":    "powerpc64",
	"ppc64le":  "powerpc64le",
	"riscv64":  "riscv64gc",
	"s390x":    "s390x",
}

// HostTriple returns the GNU-style triple of the machine this binary runs
// on. It fails when the platform has no known triple spelling; resolution
// cannot proceed without a host identity.
func HostTriple() (string, error) {
	arch, ok := hostArches[runtime.GOARCH]
	if !ok {
		return "", fmt.Errorf("no known target triple for architecture %s", runtime.GOARCH)
	}
	switch runtime.GOOS {
	case "linux":
		return arch + "-unknown-linux-gnu", nil
	case "darwin":
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	case "freebsd":
		return arch + "-unknown-freebsd", nil
	case "netbsd":
		return arch + "-unknown-netbsd", nil
	case "openbsd":
		return arch + "-unknown-openbsd", nil
	case "solaris":
		return arch + "-sun-solaris", nil
	case "illumos":
		return arch + "-unknown-illumos", nil
	default:
		return "", fmt.Errorf("no known target triple for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}
