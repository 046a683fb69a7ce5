package mapping

import (
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/models"
)

func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID:    d.EntityID,
		Name:        d.Name,
		NTN:         d.NTN,
		STRN:        d.STRN,
		Address:     d.Address,
		Province:    d.Province,
		Phone:       d.Phone,
		Email:       d.Email,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:    m.EntityID,
		Name:        m.Name,
		NTN:         m.NTN,
		STRN:        m.STRN,
		Address:     m.Address,
		Province:    m.Province,
		Phone:       m.Phone,
		Email:       m.Email,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelBuyer(d domain.Buyer) models.Buyer {
	return models.Buyer{
		BuyerID:          d.BuyerID,
		Name:             d.Name,
		NTN:              d.NTN,
		CNIC:             d.CNIC,
		STRN:             d.STRN,
		Address:          d.Address,
		Province:         d.Province,
		RegistrationType: string(d.RegistrationType),
		Phone:            d.Phone,
		Email:            d.Email,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBuyer(m models.Buyer) domain.Buyer {
	return domain.Buyer{
		BuyerID:          m.BuyerID,
		Name:             m.Name,
		NTN:              m.NTN,
		CNIC:             m.CNIC,
		STRN:             m.STRN,
		Address:          m.Address,
		Province:         m.Province,
		RegistrationType: domain.RegistrationType(m.RegistrationType),
		Phone:            m.Phone,
		Email:            m.Email,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
