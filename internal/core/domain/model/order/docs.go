// Package order contains the order aggregate and its owned entities.
//
// The aggregate root Order owns an ordered collection of items and an
// append-only status history. It enforces the status state machine, keeps
// the derived monetary totals consistent after every mutation, and produces
// the lifecycle events that downstream consumers receive.
//
// The transition rules live in a standalone table in status.go; the
// aggregate consults it but never embeds transition logic of its own.
package order
