package toolchain

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	host, err := HostTriple()
	require.NoError(t, err)

	tc, err := NewWithSystem(host, fakeSystem{})
	require.NoError(t, err)

	require.Equal(t, host, tc.Host())
	require.Equal(t, host, tc.Target())
	if runtime.GOOS != "windows" {
		// The native msvc triple resolves to lib.exe instead.
		require.Equal(t, "ar", tc.AR())
	}
	require.Equal(t, "ranlib", tc.Ranlib())
	require.NotEmpty(t, tc.CC())
	require.NotEmpty(t, tc.CXX())
	require.Empty(t, tc.Sysroot())
}

func TestNewCrossTarget(t *testing.T) {
	// No host platform maps to this triple, so the cross branch always
	// runs regardless of where the test executes.
	const target = "armv7-unknown-linux-gnueabihf"

	sys := fakeSystem{runnable: map[string]bool{"arm-linux-gnueabihf-ar": true}}
	tc, err := NewWithSystem(target, sys)
	require.NoError(t, err)

	require.Equal(t, target, tc.Target())
	require.Equal(t, "arm-linux-gnueabihf-ar", tc.AR())
	require.Equal(t, "arm-linux-gnueabihf-gcc", tc.CC())
	require.Equal(t, "arm-linux-gnueabihf-g++", tc.CXX())
}

func TestNewIdempotent(t *testing.T) {
	sys := fakeSystem{env: map[string]string{"AR": "/custom/ar", "CC": "/custom/cc"}}

	first, err := NewWithSystem("aarch64-unknown-linux-gnu", sys)
	require.NoError(t, err)
	second, err := NewWithSystem("aarch64-unknown-linux-gnu", sys)
	require.NoError(t, err)

	require.Equal(t, first.AR(), second.AR())
	require.Equal(t, first.CC(), second.CC())
	require.Equal(t, first.CXX(), second.CXX())
}

func TestSettersChain(t *testing.T) {
	tc, err := NewWithSystem("aarch64-unknown-linux-gnu", fakeSystem{})
	require.NoError(t, err)

	got := tc.
		SetSysroot("/opt/sysroot").
		SetCC("/opt/bin/cc").
		SetCXX("/opt/bin/c++").
		SetAR("/opt/bin/ar").
		SetRanlib("/opt/bin/ranlib")

	require.Same(t, tc, got)
	require.Equal(t, "/opt/sysroot", tc.Sysroot())
	require.Equal(t, "/opt/bin/cc", tc.CC())
	require.Equal(t, "/opt/bin/c++", tc.CXX())
	require.Equal(t, "/opt/bin/ar", tc.AR())
	require.Equal(t, "/opt/bin/ranlib", tc.Ranlib())
}

func TestHostTriple(t *testing.T) {
	host, err := HostTriple()
	require.NoError(t, err)
	require.NotEmpty(t, host)
}
