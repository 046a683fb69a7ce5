package models

// Entity is a row of the entities table.
type Entity struct {
	EntityID string `db:"entity_id"`
	Name     string `db:"name"`
	NTN      string `db:"ntn"`
	STRN     string `db:"strn"`
	Address  string `db:"address"`
	Province string `db:"province"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// Buyer is a row of the buyers table.
type Buyer struct {
	BuyerID          string `db:"buyer_id"`
	Name             string `db:"name"`
	NTN              string `db:"ntn"`
	CNIC             string `db:"cnic"`
	STRN             string `db:"strn"`
	Address          string `db:"address"`
	Province         string `db:"province"`
	RegistrationType string `db:"registration_type"`
	Phone            string `db:"phone"`
	Email            string `db:"email"`
	AuditFields
}
