package model

// Enum values travel on the wire exactly as the backend stores them
// (Portuguese strings); keys stay snake_case English.

// Day periods covered by a log, occurrence or task.
const (
	PeriodMorning   = "manha"
	PeriodAfternoon = "tarde"
	PeriodNight     = "noite"
	PeriodFullDay   = "integral"
)

// Approval states of a daily log / diary.
const (
	ApprovalPending  = "pendente"
	ApprovalApproved = "aprovado"
	ApprovalRejected = "rejeitado"
)

// Payment states of an expense.
const (
	PaymentPending = "PENDENTE"
	PaymentPaid    = "PAGO"
)

// Expense categories.
const (
	CategoryMaterial  = "material"
	CategoryLabor     = "mao_de_obra"
	CategoryEquipment = "equipamento"
	CategoryTransport = "transporte"
	CategoryFood      = "alimentacao"
	CategoryOther     = "outros"
)

// Payment methods.
const (
	MethodCash     = "dinheiro"
	MethodPix      = "pix"
	MethodBoleto   = "boleto"
	MethodCard     = "cartao"
	MethodTransfer = "transferencia"
)

// Occurrence types.
const (
	OccurrenceAccident         = "acidente"
	OccurrenceDelay            = "atraso"
	OccurrenceWeather          = "clima"
	OccurrenceMaterialShortage = "falta_material"
	OccurrenceInspection       = "visita"
	OccurrenceOther            = "outros"
)

// Occurrence severities.
const (
	SeverityLow      = "baixa"
	SeverityMedium   = "media"
	SeverityHigh     = "alta"
	SeverityCritical = "critica"
)

// Occurrence resolution states.
const (
	ResolutionOpen       = "aberta"
	ResolutionInProgress = "em_andamento"
	ResolutionResolved   = "resolvida"
)

// Task states.
const (
	TaskPlanned    = "planejada"
	TaskInProgress = "em_andamento"
	TaskDone       = "concluida"
	TaskCancelled  = "cancelada"
)

// Supplier document types.
const (
	DocumentIndividual = "fisica"
	DocumentCompany    = "juridica"
)

// Photo category tags.
const (
	PhotoCategoryLog        = "diario"
	PhotoCategoryOccurrence = "ocorrencia"
	PhotoCategoryTask       = "tarefa"
	PhotoCategoryCover      = "capa"
)
