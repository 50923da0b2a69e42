package models

// Bill is the minimal dispatch summary for a vendor. Address combines
// state and city only; the street address column is deliberately excluded
// to match the existing billing contract.
type Bill struct {
	Username string `json:"username"`
	Address  string `json:"address"`
}
