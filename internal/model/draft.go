package model

// Drafts are the in-memory, partially filled form state of a screen. Dates
// hold whatever the picker produced (DD/MM/YYYY or YYYY-MM-DD); the
// normalizer coerces them on submit. A zero numeric reference means "not
// selected". Drafts never reach the wire directly.

// PhotoDraft is one gallery slot pending submission.
type PhotoDraft struct {
	Data        string // data-URI
	Description string
	Category    string
}

// DailyLogDraft backs the daily-log form.
type DailyLogDraft struct {
	ID             int64
	ProjectID      int64
	Date           string
	Period         string
	Activities     string
	Occurrences    string
	Notes          string
	ResponsibleID  int64
	ApproverID     int64
	ApprovalStatus string
	Photo          string // data-URI, empty when no photo attached
}

// ExpenseDraft backs the expense form.
type ExpenseDraft struct {
	ID            int64
	ProjectID     int64
	SupplierID    int64
	Description   string
	Category      string
	Amount        float64
	DueDate       string
	PaymentMethod string
	PaymentStatus string
	PaymentDate   string
}

// OccurrenceDraft backs the occurrence form.
type OccurrenceDraft struct {
	ID               int64
	ProjectID        int64
	Date             string
	Period           string
	Type             string
	Severity         string
	Description      string
	ResolutionStatus string
	ActionTaken      string
	Photos           []PhotoDraft
}

// TaskDraft backs the task form.
type TaskDraft struct {
	ID            int64
	ProjectID     int64
	Date          string
	Period        string
	Description   string
	Status        string
	CompletionPct int
	Notes         string
	Photos        []PhotoDraft
}

// SupplierDraft backs the supplier form.
type SupplierDraft struct {
	ID             int64
	Name           string
	DocumentType   string
	DocumentNumber string
	ContactName    string
	Phone          string
	Email          string
	Active         bool
}

// DiaryMetadataDraft backs the diary cover/approval form.
type DiaryMetadataDraft struct {
	ID             int64
	ProjectID      int64
	Date           string
	Period         string
	ApprovalStatus string
	ResponsibleID  int64
	ApproverID     int64
	CoverPhoto     string // data-URI, empty when no cover
}
