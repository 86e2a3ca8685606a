package domain

type Car struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Year int32  `json:"year"`
	// Color is a 6-hex-digit RGB string without a leading '#'.
	Color     string     `json:"color"`
	DailyRate float64    `json:"dailyRate"`
	Company   CompanyRef `json:"company"`
}
