package infrastructure

import "fmt"

const (
	ordersPath        = "/api/v1/verification-orders"
	orderRequestsPath = "/api/v1/order-requests"
)

func orderPath(id int) string        { return fmt.Sprintf("%s/%d", ordersPath, id) }
func orderRequestPath(id int) string { return fmt.Sprintf("%s/%d", orderRequestsPath, id) }
