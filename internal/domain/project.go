package domain

// Project is a client engagement tracked alongside the ledger. Projects
// carry no balance and have no engine-enforced consistency rules beyond
// id uniqueness.
type Project struct {
	ID               string `json:"id"`
	StoreName        string `json:"storeName"`
	Notes            string `json:"notes"`
	Comments         string `json:"comments"`
	Date             string `json:"date"`
	ServicesRequired string `json:"servicesRequired"`
}
