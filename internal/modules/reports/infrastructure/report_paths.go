package infrastructure

import "fmt"

const reportsPath = "/api/v1/verification-reports"

func reportPath(id int) string {
	return fmt.Sprintf("%s/%d", reportsPath, id)
}

func landlordInterviewPath(orderID int) string {
	return fmt.Sprintf("/api/v1/verification-orders/%d/landlord-interview", orderID)
}
