package models

import "errors"

// Order lifecycle: pending → preparing → ready → served, with paid and
// cancelled reachable from any non-terminal state. The kitchen walks
// the first three arrows; the cashier may jump straight to paid or
// cancelled (e.g. settle a pending order at the counter).
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusServed    = "served"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

var (
	ErrInvalidStatus = errors.New("unrecognized order status")
	ErrOrderClosed   = errors.New("order is already paid or cancelled")
)

// NonTerminalStatuses is the set that makes a table count as occupied.
var NonTerminalStatuses = []string{StatusPending, StatusPreparing, StatusReady, StatusServed}

var allStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusServed:    true,
	StatusPaid:      true,
	StatusCancelled: true,
}

// ParseOrderStatus validates a status string from a request against
// the closed enumeration.
func ParseOrderStatus(s string) (string, error) {
	if !allStatuses[s] {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func IsTerminalStatus(s string) bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransition reports whether an order currently in `from` may be
// moved to `to`. Ordering between non-terminal states is deliberately
// not enforced; only terminal states are sealed.
func CanTransition(from, to string) error {
	if !allStatuses[to] {
		return ErrInvalidStatus
	}
	if IsTerminalStatus(from) {
		return ErrOrderClosed
	}
	return nil
}

// KitchenStatuses are the only targets kitchen endpoints may set.
var KitchenStatuses = map[string]bool{
	StatusPreparing: true,
	StatusReady:     true,
}
