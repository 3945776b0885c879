/*
Package toolchain provides the value types shared by the native compiler
detection pass: target triples and deduplicated target sets, the languages a
compiler is resolved for, resolved compilers with their fixed build options,
and archivers paired with a resolved C compiler.

The types in this package are immutable once built and safe to share between
goroutines.
*/
package toolchain
