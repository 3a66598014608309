package kernel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identifier prefixes for the externally visible id formats.
const (
	orderIDPrefix = "ORD"
	eventIDPrefix = "EVT"
)

// NewOrderID generates a new order identifier of the form
// ORD-<unix millis>-<8 uppercase hex chars>. The timestamp component keeps
// identifiers roughly time-ordered; the random suffix makes them unique.
func NewOrderID() string {
	return newPrefixedID(orderIDPrefix)
}

// NewEventID generates a new event identifier of the form
// EVT-<unix millis>-<8 uppercase hex chars>.
func NewEventID() string {
	return newPrefixedID(eventIDPrefix)
}

func newPrefixedID(prefix string) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
