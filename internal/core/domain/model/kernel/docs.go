// Package kernel contains shared value objects used across the domain model.
//
// It provides Money, an immutable fixed-point monetary value backed by
// decimal arithmetic, and generators for the externally visible order and
// event identifiers. Kernel types carry no behavior specific to any single
// aggregate; they exist so that every aggregate enforces the same invariants
// for amounts and identifiers.
package kernel
