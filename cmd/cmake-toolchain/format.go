package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmaxmax/cmake-toolchain/pkg/toolchain"
)

const (
	formatText  = "text"
	formatCMake = "cmake"
	formatEnv   = "env"
)

func writeToolchain(w io.Writer, tc *toolchain.Toolchain, format string) error {
	var b strings.Builder

	switch format {
	case formatText, "":
		fmt.Fprintf(&b, "host:    %s\n", tc.Host())
		fmt.Fprintf(&b, "target:  %s\n", tc.Target())
		fmt.Fprintf(&b, "cc:      %s\n", tc.CC())
		fmt.Fprintf(&b, "cxx:     %s\n", tc.CXX())
		fmt.Fprintf(&b, "ar:      %s\n", tc.AR())
		fmt.Fprintf(&b, "ranlib:  %s\n", tc.Ranlib())
		if tc.Sysroot() != "" {
			fmt.Fprintf(&b, "sysroot: %s\n", tc.Sysroot())
		}
	case formatCMake:
		fmt.Fprintf(&b, "-DCMAKE_C_COMPILER=%s\n", tc.CC())
		fmt.Fprintf(&b, "-DCMAKE_CXX_COMPILER=%s\n", tc.CXX())
		fmt.Fprintf(&b, "-DCMAKE_AR=%s\n", tc.AR())
		fmt.Fprintf(&b, "-DCMAKE_RANLIB=%s\n", tc.Ranlib())
		if tc.Sysroot() != "" {
			fmt.Fprintf(&b, "-DCMAKE_SYSROOT=%s\n", tc.Sysroot())
		}
	case formatEnv:
		fmt.Fprintf(&b, "export CC=%s\n", tc.CC())
		fmt.Fprintf(&b, "export CXX=%s\n", tc.CXX())
		fmt.Fprintf(&b, "export AR=%s\n", tc.AR())
		fmt.Fprintf(&b, "export RANLIB=%s\n", tc.Ranlib())
		if tc.Sysroot() != "" {
			fmt.Fprintf(&b, "export SYSROOT=%s\n", tc.Sysroot())
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
