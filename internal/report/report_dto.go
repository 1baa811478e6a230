package report

// MonthlyReportRow is one employee's aggregated hours for a calendar month.
type MonthlyReportRow struct {
	UserName   string  `json:"userName"`
	TotalHours float64 `json:"totalHours"`
}

type MonthlyReportResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Rows  []MonthlyReportRow `json:"rows"`
}
