/*
Package domain contains the core types of the intake engine: the answer
record with its branch-local sub-records, the step catalog types, derived
summary and submission payload shapes, lifecycle events, and sentinel errors.

The package has no dependencies on adapters or the runtime; every other
package in the module depends on it, never the other way around.
*/
package domain
