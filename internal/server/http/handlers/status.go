package handlers

import "github.com/mpetrenko/ordersvc/internal/domain/model"

// Wire encoding of order statuses: position in the slice is the integer code.
var statusCodes = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
	model.OrderStatusCancelled,
}

func statusFromCode(code int) (model.OrderStatus, bool) {
	if code < 0 || code >= len(statusCodes) {
		return "", false
	}
	return statusCodes[code], true
}

func codeFromStatus(status model.OrderStatus) int {
	for code, s := range statusCodes {
		if s == status {
			return code
		}
	}
	return -1
}
