package models

// allowedTransitions lists the approval moves a listing may make.
// Approved and Rejected are terminal.
var allowedTransitions = map[HotelStatus]map[HotelStatus]bool{
	HotelStatusPending:  {HotelStatusApproved: true, HotelStatusRejected: true},
	HotelStatusApproved: {},
	HotelStatusRejected: {},
}

// CanTransition reports whether a listing in from may move to to
func CanTransition(from, to HotelStatus) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// IsTerminal reports whether no transition leaves s
func IsTerminal(s HotelStatus) bool {
	return len(allowedTransitions[s]) == 0
}
