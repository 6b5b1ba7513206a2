package attendance

type MarkAttendanceRequest struct {
	EmployeeID     uint   `json:"employee_id" binding:"required,gt=0"`
	AttendanceDate string `json:"attendance_date" binding:"required,datetime=2006-01-02"`
	Status         string `json:"status" binding:"required,oneof=Present Absent"`
}

type AttendanceResponse struct {
	ID             uint   `json:"id"`
	EmployeeID     uint   `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// EnrichedAttendanceResponse adds the owning employee's display fields to the
// record, for the listing endpoints.
type EnrichedAttendanceResponse struct {
	ID             uint   `json:"id"`
	EmployeeID     uint   `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
	EmployeeName   string `json:"employee_name"`
	EmployeeEmail  string `json:"employee_email"`
	CreatedAt      string `json:"created_at"`
}
