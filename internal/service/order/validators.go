package order

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isFilled(s string) bool {
	return strings.TrimSpace(s) != ""
}
