package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
)

// CreateBuyerRequest defines the data needed to create a buyer.
type CreateBuyerRequest struct {
	Name             string `json:"name" binding:"required"`
	NTN              string `json:"ntn" binding:"omitempty,ntn"`
	CNIC             string `json:"cnic" binding:"omitempty,cnic"`
	STRN             string `json:"strn"`
	Address          string `json:"address"`
	Province         string `json:"province" binding:"omitempty,notplaceholder"`
	RegistrationType string `json:"registrationType" binding:"omitempty,oneof=Registered Unregistered"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"omitempty,email"`
}

// CreateEntityRequest defines the data needed to create a seller entity.
type CreateEntityRequest struct {
	Name     string `json:"name" binding:"required"`
	NTN      string `json:"ntn" binding:"required,ntn"`
	STRN     string `json:"strn"`
	Address  string `json:"address"`
	Province string `json:"province" binding:"omitempty,notplaceholder"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// ListParams defines offset pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// BuyerResponse defines the data returned for a buyer.
type BuyerResponse struct {
	BuyerID          string    `json:"buyerID"`
	Name             string    `json:"name"`
	NTN              string    `json:"ntn"`
	CNIC             string    `json:"cnic"`
	STRN             string    `json:"strn"`
	Address          string    `json:"address"`
	Province         string    `json:"province"`
	RegistrationType string    `json:"registrationType"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"createdAt"`
}

// EntityResponse defines the data returned for an entity.
type EntityResponse struct {
	EntityID  string    `json:"entityID"`
	Name      string    `json:"name"`
	NTN       string    `json:"ntn"`
	STRN      string    `json:"strn"`
	Address   string    `json:"address"`
	Province  string    `json:"province"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToDomainBuyer copies the request into a buyer without id or audit fields.
func (r CreateBuyerRequest) ToDomainBuyer() domain.Buyer {
	regType := domain.RegistrationType(r.RegistrationType)
	if regType == "" {
		regType = domain.RegistrationUnregistered
		if strings.TrimSpace(r.NTN) != "" {
			regType = domain.RegistrationRegistered
		}
	}
	return domain.Buyer{
		Name:             strings.TrimSpace(r.Name),
		NTN:              strings.TrimSpace(r.NTN),
		CNIC:             strings.TrimSpace(r.CNIC),
		STRN:             strings.TrimSpace(r.STRN),
		Address:          strings.TrimSpace(r.Address),
		Province:         strings.TrimSpace(r.Province),
		RegistrationType: regType,
		Phone:            strings.TrimSpace(r.Phone),
		Email:            strings.TrimSpace(r.Email),
	}
}

// ToDomainEntity copies the request into an active entity without id or audit fields.
func (r CreateEntityRequest) ToDomainEntity() domain.Entity {
	return domain.Entity{
		Name:     strings.TrimSpace(r.Name),
		NTN:      strings.TrimSpace(r.NTN),
		STRN:     strings.TrimSpace(r.STRN),
		Address:  strings.TrimSpace(r.Address),
		Province: strings.TrimSpace(r.Province),
		Phone:    strings.TrimSpace(r.Phone),
		Email:    strings.TrimSpace(r.Email),
		IsActive: true,
	}
}

// ToBuyerResponse converts a domain.Buyer to BuyerResponse DTO.
func ToBuyerResponse(b *domain.Buyer) BuyerResponse {
	return BuyerResponse{
		BuyerID:          b.BuyerID,
		Name:             b.Name,
		NTN:              b.NTN,
		CNIC:             b.CNIC,
		STRN:             b.STRN,
		Address:          b.Address,
		Province:         b.Province,
		RegistrationType: string(b.RegistrationType),
		Phone:            b.Phone,
		Email:            b.Email,
		CreatedAt:        b.CreatedAt,
	}
}

func ToBuyerResponses(buyers []domain.Buyer) []BuyerResponse {
	res := make([]BuyerResponse, len(buyers))
	for i := range buyers {
		res[i] = ToBuyerResponse(&buyers[i])
	}
	return res
}

// ToEntityResponse converts a domain.Entity to EntityResponse DTO.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:  e.EntityID,
		Name:      e.Name,
		NTN:       e.NTN,
		STRN:      e.STRN,
		Address:   e.Address,
		Province:  e.Province,
		Phone:     e.Phone,
		Email:     e.Email,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

func ToEntityResponses(entities []domain.Entity) []EntityResponse {
	res := make([]EntityResponse, len(entities))
	for i := range entities {
		res[i] = ToEntityResponse(&entities[i])
	}
	return res
}
