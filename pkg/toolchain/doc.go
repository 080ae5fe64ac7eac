/*
Package toolchain resolves the native build tools (C/C++ compiler,
archiver, ranlib, sysroot) appropriate for a target platform, accounting
for cross-compilation prefixes and the usual environment variable
conventions. The resolved values are meant to configure a CMake
invocation, but nothing in the package is CMake-specific beyond the
naming of the fields.
*/
package toolchain
