package domain

// RegistrationType tells whether a buyer is registered for sales tax.
type RegistrationType string

const (
	RegistrationRegistered   RegistrationType = "Registered"
	RegistrationUnregistered RegistrationType = "Unregistered"
)

// IsValid reports whether r is one of the known registration types.
func (r RegistrationType) IsValid() bool {
	return r == RegistrationRegistered || r == RegistrationUnregistered
}

// Entity is a seller issuing invoices.
type Entity struct {
	EntityID string `json:"entityID"`
	Name     string `json:"name"`
	NTN      string `json:"ntn"`
	STRN     string `json:"strn"`
	Address  string `json:"address"`
	Province string `json:"province"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Buyer is the customer an invoice is issued to.
type Buyer struct {
	BuyerID          string           `json:"buyerID"`
	Name             string           `json:"name"`
	NTN              string           `json:"ntn"`
	CNIC             string           `json:"cnic"`
	STRN             string           `json:"strn"`
	Address          string           `json:"address"`
	Province         string           `json:"province"`
	RegistrationType RegistrationType `json:"registrationType"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	AuditFields
}

// fieldValue returns the display value of a "business" section field.
func (e Entity) fieldValue(key string) string {
	switch key {
	case "name":
		return e.Name
	case "ntn":
		return e.NTN
	case "strn":
		return e.STRN
	case "address":
		return e.Address
	case "province":
		return e.Province
	case "phone":
		return e.Phone
	case "email":
		return e.Email
	}
	return ""
}

// fieldValue returns the display value of a "buyer" section field.
func (b Buyer) fieldValue(key string) string {
	switch key {
	case "name":
		return b.Name
	case "ntn":
		return b.NTN
	case "cnic":
		return b.CNIC
	case "strn":
		return b.STRN
	case "address":
		return b.Address
	case "province":
		return b.Province
	case "registrationType":
		return string(b.RegistrationType)
	case "phone":
		return b.Phone
	case "email":
		return b.Email
	}
	return ""
}
