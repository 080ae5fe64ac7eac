package toolchain

import (
	"path/filepath"
	"strings"
)

// gnuPrefixes maps known target triples to their canonical GNU toolchain
// prefixes. A few targets have several historically valid naming schemes;
// those list every candidate, most likely first, and the installed one is
// picked by findWorkingPrefix.
var gnuPrefixes = map[string][]string{
	"aarch64-pc-windows-gnu":         {"aarch64-w64-mingw32"},
	"aarch64-uwp-windows-gnu":        {"aarch64-w64-mingw32"},
	"aarch64-unknown-linux-gnu":      {"aarch64-linux-gnu"},
	"aarch64-unknown-linux-musl":     {"aarch64-linux-musl"},
	"aarch64-unknown-netbsd":         {"aarch64--netbsd"},
	"arm-unknown-linux-gnueabi":      {"arm-linux-gnueabi"},
	"armv4t-unknown-linux-gnueabi":   {"arm-linux-gnueabi"},
	"armv5te-unknown-linux-gnueabi":  {"arm-linux-gnueabi"},
	"armv5te-unknown-linux-musleabi": {"arm-linux-gnueabi"},
	"arm-frc-linux-gnueabi":          {"arm-frc-linux-gnueabi"},
	"arm-unknown-linux-gnueabihf":    {"arm-linux-gnueabihf"},
	"arm-unknown-linux-musleabi":     {"arm-linux-musleabi"},
	"arm-unknown-linux-musleabihf":   {"arm-linux-musleabihf"},
	"arm-unknown-netbsd-eabi":        {"arm--netbsdelf-eabi"},
	"armv6-unknown-netbsd-eabihf":    {"armv6--netbsdelf-eabihf"},
	"armv7-unknown-linux-gnueabi":    {"arm-linux-gnueabi"},
	"armv7-unknown-linux-gnueabihf":  {"arm-linux-gnueabihf"},
	"armv7-unknown-linux-musleabihf": {"arm-linux-musleabihf"},
	"armv7neon-unknown-linux-gnueabihf":    {"arm-linux-gnueabihf"},
	"armv7neon-unknown-linux-musleabihf":   {"arm-linux-musleabihf"},
	"thumbv7-unknown-linux-gnueabihf":      {"arm-linux-gnueabihf"},
	"thumbv7-unknown-linux-musleabihf":     {"arm-linux-musleabihf"},
	"thumbv7neon-unknown-linux-gnueabihf":  {"arm-linux-gnueabihf"},
	"thumbv7neon-unknown-linux-musleabihf": {"arm-linux-musleabihf"},
	"armv7-unknown-netbsd-eabihf":    {"armv7--netbsdelf-eabihf"},
	"hexagon-unknown-linux-musl":     {"hexagon-linux-musl"},
	"i586-unknown-linux-musl":        {"musl"},
	"i686-pc-windows-gnu":            {"i686-w64-mingw32"},
	"i686-uwp-windows-gnu":           {"i686-w64-mingw32"},
	"i686-unknown-linux-gnu": {
		"i686-linux-gnu",
		"x86_64-linux-gnu", // transparently support gcc-multilib
	},
	"i686-unknown-linux-musl":         {"musl"},
	"i686-unknown-netbsd":             {"i486--netbsdelf"},
	"mips-unknown-linux-gnu":          {"mips-linux-gnu"},
	"mips-unknown-linux-musl":         {"mips-linux-musl"},
	"mipsel-unknown-linux-gnu":        {"mipsel-linux-gnu"},
	"mipsel-unknown-linux-musl":       {"mipsel-linux-musl"},
	"mips64-unknown-linux-gnuabi64":   {"mips64-linux-gnuabi64"},
	"mips64el-unknown-linux-gnuabi64": {"mips64el-linux-gnuabi64"},
	"mipsisa32r6-unknown-linux-gnu":   {"mipsisa32r6-linux-gnu"},
	"mipsisa32r6el-unknown-linux-gnu": {"mipsisa32r6el-linux-gnu"},
	"mipsisa64r6-unknown-linux-gnuabi64":   {"mipsisa64r6-linux-gnuabi64"},
	"mipsisa64r6el-unknown-linux-gnuabi64": {"mipsisa64r6el-linux-gnuabi64"},
	"powerpc-unknown-linux-gnu":      {"powerpc-linux-gnu"},
	"powerpc-unknown-linux-gnuspe":   {"powerpc-linux-gnuspe"},
	"powerpc-unknown-netbsd":         {"powerpc--netbsd"},
	"powerpc64-unknown-linux-gnu":    {"powerpc-linux-gnu"},
	"powerpc64le-unknown-linux-gnu":  {"powerpc64le-linux-gnu"},
	"riscv32i-unknown-none-elf": {
		"riscv32-unknown-elf",
		"riscv64-unknown-elf",
		"riscv-none-embed",
	},
	"riscv32imac-unknown-none-elf": {
		"riscv32-unknown-elf",
		"riscv64-unknown-elf",
		"riscv-none-embed",
	},
	"riscv32imc-unknown-none-elf": {
		"riscv32-unknown-elf",
		"riscv64-unknown-elf",
		"riscv-none-embed",
	},
	"riscv64gc-unknown-none-elf": {
		"riscv64-unknown-elf",
		"riscv32-unknown-elf",
		"riscv-none-embed",
	},
	"riscv64imac-unknown-none-elf": {
		"riscv64-unknown-elf",
		"riscv32-unknown-elf",
		"riscv-none-embed",
	},
	"riscv64gc-unknown-linux-gnu":  {"riscv64-linux-gnu"},
	"riscv32gc-unknown-linux-gnu":  {"riscv32-linux-gnu"},
	"riscv64gc-unknown-linux-musl": {"riscv64-linux-musl"},
	"riscv32gc-unknown-linux-musl": {"riscv32-linux-musl"},
	"s390x-unknown-linux-gnu":      {"s390x-linux-gnu"},
	"sparc-unknown-linux-gnu":      {"sparc-linux-gnu"},
	"sparc64-unknown-linux-gnu":    {"sparc64-linux-gnu"},
	"sparc64-unknown-netbsd":       {"sparc64--netbsd"},
	"sparcv9-sun-solaris":          {"sparcv9-sun-solaris"},
	"armv7a-none-eabi":             {"arm-none-eabi"},
	"armv7a-none-eabihf":           {"arm-none-eabi"},
	"armebv7r-none-eabi":           {"arm-none-eabi"},
	"armebv7r-none-eabihf":         {"arm-none-eabi"},
	"armv7r-none-eabi":             {"arm-none-eabi"},
	"armv7r-none-eabihf":           {"arm-none-eabi"},
	"thumbv6m-none-eabi":           {"arm-none-eabi"},
	"thumbv7em-none-eabi":          {"arm-none-eabi"},
	"thumbv7em-none-eabihf":        {"arm-none-eabi"},
	"thumbv7m-none-eabi":           {"arm-none-eabi"},
	"thumbv8m.base-none-eabi":      {"arm-none-eabi"},
	"thumbv8m.main-none-eabi":      {"arm-none-eabi"},
	"thumbv8m.main-none-eabihf":    {"arm-none-eabi"},
	"x86_64-pc-windows-gnu":        {"x86_64-w64-mingw32"},
	"x86_64-uwp-windows-gnu":       {"x86_64-w64-mingw32"},
	"x86_64-rumprun-netbsd":        {"x86_64-rumprun-netbsd"},
	"x86_64-unknown-linux-gnu":     {"x86_64-linux-gnu"},
	"x86_64-unknown-linux-musl":    {"musl"},
	"x86_64-unknown-netbsd":        {"x86_64--netbsd"},
}

// prefixForTarget returns the GNU toolchain prefix for a cross target.
// CROSS_COMPILE, when set, wins over the table; trailing hyphens are
// trimmed so both "arm-linux-gnueabi" and "arm-linux-gnueabi-" work.
// Targets absent from the table have no prefix.
func prefixForTarget(sys System, target string) (string, bool) {
	if v, ok := sys.Getenv("CROSS_COMPILE"); ok {
		return strings.TrimRight(v, "-"), true
	}
	candidates, ok := gnuPrefixes[target]
	if !ok {
		return "", false
	}
	return findWorkingPrefix(sys, candidates), true
}

// findWorkingPrefix walks PATH looking for a cross gcc named after one of
// the candidate prefixes and returns the first candidate found. Walking
// PATH in order prefers the toolchain that would actually be picked up by
// the build. When nothing matches, the first candidate is returned as-is:
// it is known not to exist, but it gives the eventual failure message the
// exact binary name the user needs to install.
func findWorkingPrefix(sys System, candidates []string) string {
	suffix := "-gcc" + sys.ExeSuffix()
	for _, dir := range sys.PathEntries() {
		for _, prefix := range candidates {
			if sys.Exists(filepath.Join(dir, prefix+suffix)) {
				return prefix
			}
		}
	}
	return candidates[0]
}
