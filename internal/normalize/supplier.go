package normalize

import "github.com/obralog/obralog/internal/model"

// Supplier maps a supplier draft to its request body.
func Supplier(d model.SupplierDraft) (model.SupplierPayload, error) {
	if trim(d.Name) == "" {
		return model.SupplierPayload{}, failf("name", "inform the supplier name")
	}
	if trim(d.DocumentType) == "" {
		return model.SupplierPayload{}, failf("document_type", "select the document type")
	}
	if trim(d.DocumentNumber) == "" {
		return model.SupplierPayload{}, failf("document_number", "inform the document number")
	}

	return model.SupplierPayload{
		ID:             d.ID,
		Name:           trim(d.Name),
		DocumentType:   d.DocumentType,
		DocumentNumber: trim(d.DocumentNumber),
		ContactName:    optional(d.ContactName),
		Phone:          optional(d.Phone),
		Email:          optional(d.Email),
		Active:         d.Active,
	}, nil
}
