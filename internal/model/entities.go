// Package model defines the diary entities, the in-memory form drafts and
// the wire payloads exchanged with the backend.
package model

// Project is a construction site the diary belongs to.
type Project struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client"`
	Active bool   `json:"active"`
}

// Person is a staff member referenced as responsible or approver.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Supplier is a goods/services provider referenced by expenses.
type Supplier struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	ContactName    string `json:"contact_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Active         bool   `json:"active"`
}

// Photo is an encoded image owned by exactly one parent record.
type Photo struct {
	ID           int64  `json:"id"`
	EntityID     int64  `json:"entity_id"`
	Data         string `json:"data"` // data:<mime>;base64,<payload>
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	Category     string `json:"category"`
}

// DailyLog is one project/date/period activity record.
type DailyLog struct {
	ID             int64  `json:"id"`
	ProjectID      int64  `json:"project_id"`
	Date           string `json:"date"`
	Period         string `json:"period"`
	Activities     string `json:"activities"`
	Occurrences    string `json:"occurrences"`
	Notes          string `json:"notes"`
	ResponsibleID  int64  `json:"responsible_id"`
	ApproverID     *int64 `json:"approver_id,omitempty"`
	ApprovalStatus string `json:"approval_status"`
	Photo          *Photo `json:"photo,omitempty"`
}

// Expense is a financial entry against a project.
type Expense struct {
	ID            int64   `json:"id"`
	ProjectID     int64   `json:"project_id"`
	SupplierID    int64   `json:"supplier_id"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	PaymentDate   *string `json:"payment_date,omitempty"`
}

// Occurrence is an incident recorded on site.
type Occurrence struct {
	ID               int64   `json:"id"`
	ProjectID        int64   `json:"project_id"`
	Date             string  `json:"date"`
	Period           string  `json:"period"`
	Type             string  `json:"type"`
	Severity         string  `json:"severity"`
	Description      string  `json:"description"`
	ResolutionStatus string  `json:"resolution_status"`
	ActionTaken      *string `json:"action_taken,omitempty"`
	Photos           []Photo `json:"photos"`
}

// Task is a planned unit of work with completion tracking.
type Task struct {
	ID            int64   `json:"id"`
	ProjectID     int64   `json:"project_id"`
	Date          string  `json:"date"`
	Period        string  `json:"period"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	CompletionPct int     `json:"completion_pct"`
	Notes         *string `json:"notes,omitempty"`
	Photos        []Photo `json:"photos"`
}

// DiaryMetadata anchors one project/date/period: who was responsible, the
// approval state and an optional cover photo (first element of the list).
type DiaryMetadata struct {
	ID             int64   `json:"id"`
	ProjectID      int64   `json:"project_id"`
	Date           string  `json:"date"`
	Period         string  `json:"period"`
	ApprovalStatus string  `json:"approval_status"`
	ResponsibleID  int64   `json:"responsible_id"`
	ApproverID     *int64  `json:"approver_id,omitempty"`
	Photos         []Photo `json:"photos"`
}

// CoverPhoto returns the diary cover, the first photo, or nil.
func (m DiaryMetadata) CoverPhoto() *Photo {
	if len(m.Photos) == 0 {
		return nil
	}
	return &m.Photos[0]
}
