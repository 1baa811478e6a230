package timeentry

// Field names mirror the spreadsheet header so API payloads and sheet
// columns read the same.
type EntryResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	Date         string  `json:"date"`
	ClockInTime  string  `json:"clockInTime"`
	ClockOutTime *string `json:"clockOutTime,omitempty"`
}
