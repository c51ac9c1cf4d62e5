package validate

import (
	"strings"

	"restaurant-dashboard/internal/types"
)

var knownStatuses = []types.Status{
	types.PendingStatus,
	types.PreparingStatus,
	types.CookedStatus,
	types.DeliveringStatus,
	types.CompletedStatus,
	types.CancelledStatus,
}

// ValidateStatus reports whether s belongs to the order status vocabulary.
// Comparison is case-insensitive, the remote API is lax about casing.
func ValidateStatus(s string) bool {
	for _, known := range knownStatuses {
		if strings.EqualFold(s, string(known)) {
			return true
		}
	}
	return false
}
