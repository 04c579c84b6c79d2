package model

// Wire payloads are the exact request bodies the backend accepts. The
// backend rejects a present-but-empty reference as an attempt to set a
// foreign key, so every conditional field is a pointer with omitempty:
// omitted means absent from the JSON, not empty.

// PhotoPayload is one outgoing photo, rebuilt from the gallery on every
// submit and tagged with its parent placeholder id and array position.
type PhotoPayload struct {
	EntityID     int64  `json:"entity_id"`
	Data         string `json:"data"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	Category     string `json:"category"`
}

// DailyLogPayload is the daily-log request body.
type DailyLogPayload struct {
	ID             int64         `json:"id,omitempty"`
	ProjectID      int64         `json:"project_id"`
	Date           string        `json:"date"`
	Period         string        `json:"period"`
	Activities     string        `json:"activities"`
	Occurrences    *string       `json:"occurrences,omitempty"`
	Notes          *string       `json:"notes,omitempty"`
	ResponsibleID  int64         `json:"responsible_id"`
	ApproverID     *int64        `json:"approver_id,omitempty"`
	ApprovalStatus string        `json:"approval_status"`
	Photo          *PhotoPayload `json:"photo,omitempty"`
}

// ExpensePayload is the expense request body.
type ExpensePayload struct {
	ID            int64   `json:"id,omitempty"`
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

// OccurrencePayload is the occurrence request body.
type OccurrencePayload struct {
	ID               int64          `json:"id,omitempty"`
	ProjectID        int64          `json:"project_id"`
	Date             string         `json:"date"`
	Period           string         `json:"period"`
	Type             string         `json:"type"`
	Severity         string         `json:"severity"`
	Description      string         `json:"description"`
	ResolutionStatus string         `json:"resolution_status"`
	ActionTaken      *string        `json:"action_taken,omitempty"`
	Photos           []PhotoPayload `json:"photos"`
}

// TaskPayload is the task request body.
type TaskPayload struct {
	ID            int64          `json:"id,omitempty"`
	ProjectID     int64          `json:"project_id"`
	Date          string         `json:"date"`
	Period        string         `json:"period"`
	Description   string         `json:"description"`
	Status        string         `json:"status"`
	CompletionPct int            `json:"completion_pct"`
	Notes         *string        `json:"notes,omitempty"`
	Photos        []PhotoPayload `json:"photos"`
}

// SupplierPayload is the supplier request body.
type SupplierPayload struct {
	ID             int64   `json:"id,omitempty"`
	Name           string  `json:"name"`
	DocumentType   string  `json:"document_type"`
	DocumentNumber string  `json:"document_number"`
	ContactName    *string `json:"contact_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Active         bool    `json:"active"`
}

// DiaryMetadataPayload is the diary metadata request body.
type DiaryMetadataPayload struct {
	ID             int64          `json:"id,omitempty"`
	ProjectID      int64          `json:"project_id"`
	Date           string         `json:"date"`
	Period         string         `json:"period"`
	ApprovalStatus string         `json:"approval_status"`
	ResponsibleID  int64          `json:"responsible_id"`
	ApproverID     *int64         `json:"approver_id,omitempty"`
	Photos         []PhotoPayload `json:"photos"`
}
