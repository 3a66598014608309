package order

import "time"

// StatusHistory is an append-only record of a single status change.
// Entries are owned by the order; insertion order is chronological order.
// An entry is never mutated after creation, except that the orchestrator may
// backfill reason and changed-by on the most recently appended entry before
// the order is persisted.
type StatusHistory struct {
	// id is the surrogate identifier assigned by the store; zero until saved.
	id uint64

	// fromStatus is nil only for the implicit initial state at creation time.
	fromStatus *Status

	toStatus  Status
	reason    string
	changedBy string
	changedAt time.Time
}

// newStatusHistory creates a history entry for a transition performed by the aggregate.
func newStatusHistory(from *Status, to Status, at time.Time) *StatusHistory {
	return &StatusHistory{
		fromStatus: from,
		toStatus:   to,
		changedAt:  at,
	}
}

// RestoreStatusHistory rebuilds a history entry from persistence.
func RestoreStatusHistory(id uint64, from *Status, to Status, reason, changedBy string, changedAt time.Time) *StatusHistory {
	return &StatusHistory{
		id:         id,
		fromStatus: from,
		toStatus:   to,
		reason:     reason,
		changedBy:  changedBy,
		changedAt:  changedAt,
	}
}

// ID returns the surrogate identifier assigned by the store, zero for unsaved entries.
func (h *StatusHistory) ID() uint64 {
	return h.id
}

// FromStatus returns the status the order moved from, nil for the initial entry.
func (h *StatusHistory) FromStatus() *Status {
	return h.fromStatus
}

// ToStatus returns the status the order moved to.
func (h *StatusHistory) ToStatus() Status {
	return h.toStatus
}

// Reason returns the recorded reason for the change.
func (h *StatusHistory) Reason() string {
	return h.reason
}

// ChangedBy returns the actor that performed the change.
func (h *StatusHistory) ChangedBy() string {
	return h.changedBy
}

// ChangedAt returns when the change happened.
func (h *StatusHistory) ChangedAt() time.Time {
	return h.changedAt
}

// SetAudit backfills reason and actor on the entry. Only the most recently
// appended entry may be audited, before the order is persisted.
func (h *StatusHistory) SetAudit(reason, changedBy string) {
	h.reason = reason
	h.changedBy = changedBy
}
