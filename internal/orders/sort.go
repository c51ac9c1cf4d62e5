package orders

import (
	"sort"
	"strings"

	"restaurant-dashboard/internal/types"
)

// statusPriority decides which orders surface first on the dashboard.
// Statuses not listed (completed, cancelled, anything unexpected) sort last.
var statusPriority = map[string]int{
	"pending":    1,
	"preparing":  2,
	"cooked":     3,
	"delivering": 5,
}

const defaultPriority = 99

func priority(status types.Status) int {
	if p, ok := statusPriority[strings.ToLower(string(status))]; ok {
		return p
	}
	return defaultPriority
}

// SortOrders returns a copy of orders sorted by status priority. The sort is
// stable, so orders with equal priority keep their fetched relative order.
// Both the poller and the manual refresh views must rank orders through this
// function, otherwise "latest order" diverges between them.
func SortOrders(orders []types.Order) []types.Order {
	sorted := make([]types.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return priority(sorted[i].OrderStatus) < priority(sorted[j].OrderStatus)
	})
	return sorted
}

// IsNovel reports whether candidate identifies an order not seen before.
// Identity is the orderId only, never the order code or list position.
// An empty previous value means nothing was observed yet, so any candidate
// counts as new.
func IsNovel(previous string, candidate string) bool {
	return candidate != "" && candidate != previous
}
