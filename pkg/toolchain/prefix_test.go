package toolchain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixForTarget(t *testing.T) {
	type test struct {
		name   string
		target string
		env    map[string]string
		files  map[string]bool
		path   []string
		expect string
		ok     bool
	}

	tests := []test{
		{
			name:   "CrossCompileOverridesTable",
			target: "aarch64-unknown-linux-gnu",
			env:    map[string]string{"CROSS_COMPILE": "arm-linux-gnueabi-"},
			expect: "arm-linux-gnueabi",
			ok:     true,
		},
		{
			name:   "CrossCompileUnknownTarget",
			target: "xtensa-esp32-none-elf",
			env:    map[string]string{"CROSS_COMPILE": "xtensa-esp32-elf"},
			expect: "xtensa-esp32-elf",
			ok:     true,
		},
		{
			name:   "TableSingleCandidate",
			target: "armv7-unknown-linux-gnueabihf",
			expect: "arm-linux-gnueabihf",
			ok:     true,
		},
		{
			name:   "TableMultiCandidateInstalledWins",
			target: "i686-unknown-linux-gnu",
			path:   []string{filepath.Join("/", "usr", "bin")},
			files: map[string]bool{
				filepath.Join("/", "usr", "bin", "x86_64-linux-gnu-gcc"): true,
			},
			expect: "x86_64-linux-gnu",
			ok:     true,
		},
		{
			name:   "TableMultiCandidateNoneInstalled",
			target: "i686-unknown-linux-gnu",
			expect: "i686-linux-gnu",
			ok:     true,
		},
		{
			name:   "UnknownTarget",
			target: "xtensa-esp32-none-elf",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sys := fakeSystem{env: tc.env, path: tc.path, files: tc.files}
			prefix, ok := prefixForTarget(sys, tc.target)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expect, prefix)
		})
	}
}

func TestFindWorkingPrefix(t *testing.T) {
	candidates := []string{"a", "b"}
	binDir := filepath.Join("/", "bin")
	optDir := filepath.Join("/", "opt", "cross", "bin")

	type test struct {
		name      string
		path      []string
		files     map[string]bool
		exeSuffix string
		expect    string
	}

	tests := []test{
		{
			name:   "NoMatchReturnsFirstCandidate",
			path:   []string{binDir, optDir},
			expect: "a",
		},
		{
			name:   "EmptyPathReturnsFirstCandidate",
			expect: "a",
		},
		{
			name:   "MatchInLaterDirectory",
			path:   []string{binDir, optDir},
			files:  map[string]bool{filepath.Join(optDir, "b-gcc"): true},
			expect: "b",
		},
		{
			name: "CandidateOrderWithinDirectory",
			path: []string{binDir},
			files: map[string]bool{
				filepath.Join(binDir, "a-gcc"): true,
				filepath.Join(binDir, "b-gcc"): true,
			},
			expect: "a",
		},
		{
			name: "EarlierDirectoryWins",
			path: []string{binDir, optDir},
			files: map[string]bool{
				filepath.Join(binDir, "b-gcc"): true,
				filepath.Join(optDir, "a-gcc"): true,
			},
			expect: "b",
		},
		{
			name:      "ExecutableSuffix",
			path:      []string{binDir},
			files:     map[string]bool{filepath.Join(binDir, "b-gcc.exe"): true},
			exeSuffix: ".exe",
			expect:    "b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sys := fakeSystem{path: tc.path, files: tc.files, exeSuffix: tc.exeSuffix}
			require.Equal(t, tc.expect, findWorkingPrefix(sys, candidates))
		})
	}
}
