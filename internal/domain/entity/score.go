package entity

// LoungeScore is one ranked candidate. Inaccessible lounges are still
// scored and returned so the caller can present alternatives, but they
// always sort after every accessible one.
type LoungeScore struct {
	Lounge     Lounge   `json:"lounge"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
	Accessible bool     `json:"accessible"`
}
