package screen

import (
	"context"
	"strings"

	"github.com/obralog/obralog/internal/model"
	"github.com/obralog/obralog/internal/normalize"
)

// Suppliers is the supplier screen.
type Suppliers struct {
	backend Backend
	guard   inflight

	Suppliers []model.Supplier
	Draft     model.SupplierDraft
}

// NewSuppliers builds the supplier screen over a backend.
func NewSuppliers(backend Backend) *Suppliers {
	return &Suppliers{backend: backend}
}

// Load fetches the supplier list.
func (s *Suppliers) Load(ctx context.Context) error {
	suppliers, err := s.backend.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	s.Suppliers = suppliers
	return nil
}

// SupplierFilter is the client-side filter over the loaded list.
type SupplierFilter struct {
	Text       string
	OnlyActive bool
}

// Filtered returns the loaded suppliers matching f. The text filter
// matches name, document number and contact name.
func (s *Suppliers) Filtered(f SupplierFilter) []model.Supplier {
	text := strings.ToLower(f.Text)
	var out []model.Supplier
	for _, sp := range s.Suppliers {
		if f.OnlyActive && !sp.Active {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(sp.Name), text) &&
			!strings.Contains(sp.DocumentNumber, f.Text) &&
			!strings.Contains(strings.ToLower(sp.ContactName), text) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// BeginCreate resets the draft for a new supplier.
func (s *Suppliers) BeginCreate() {
	s.Draft = model.SupplierDraft{Active: true}
}

// BeginEdit loads an existing supplier into the draft.
func (s *Suppliers) BeginEdit(sp model.Supplier) {
	s.Draft = model.SupplierDraft{
		ID:             sp.ID,
		Name:           sp.Name,
		DocumentType:   sp.DocumentType,
		DocumentNumber: sp.DocumentNumber,
		ContactName:    sp.ContactName,
		Phone:          sp.Phone,
		Email:          sp.Email,
		Active:         sp.Active,
	}
}

// Submit validates and normalizes the draft, sends it, and merges the
// response into the list.
func (s *Suppliers) Submit(ctx context.Context) (model.Supplier, error) {
	if err := s.guard.begin(); err != nil {
		return model.Supplier{}, err
	}
	defer s.guard.end()

	payload, err := normalize.Supplier(s.Draft)
	if err != nil {
		return model.Supplier{}, err
	}

	var saved model.Supplier
	if payload.ID > 0 {
		saved, err = s.backend.UpdateSupplier(ctx, payload)
	} else {
		saved, err = s.backend.CreateSupplier(ctx, payload)
	}
	if err != nil {
		return model.Supplier{}, err
	}

	s.merge(saved)
	return saved, nil
}

// Delete removes the supplier and compacts the list on success.
func (s *Suppliers) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteSupplier(ctx, id); err != nil {
		return err
	}
	for i, sp := range s.Suppliers {
		if sp.ID == id {
			s.Suppliers = append(s.Suppliers[:i], s.Suppliers[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Suppliers) merge(saved model.Supplier) {
	for i, sp := range s.Suppliers {
		if sp.ID == saved.ID {
			s.Suppliers[i] = saved
			return
		}
	}
	s.Suppliers = append(s.Suppliers, saved)
}
