package serviceimpl

import "taskboard/domain/models"

// nextOrder returns the append position for a new sibling: 0 for an empty
// set, otherwise the highest existing order plus one. Reads and the later
// insert are not atomic, so two concurrent appends can race to the same
// value. The board tolerates duplicate orders; ties sort by creation time.
func nextOrder(orders []int) int {
	if len(orders) == 0 {
		return 0
	}
	max := orders[0]
	for _, o := range orders[1:] {
		if o > max {
			max = o
		}
	}
	return max + 1
}

func columnOrders(columns []*models.Column) []int {
	orders := make([]int, len(columns))
	for i, c := range columns {
		orders[i] = c.Order
	}
	return orders
}

func taskOrders(tasks []*models.Task) []int {
	orders := make([]int, len(tasks))
	for i, t := range tasks {
		orders[i] = t.Order
	}
	return orders
}

// clampIndex bounds a requested destination index to a valid insertion
// point within a sibling list of length n.
func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}
