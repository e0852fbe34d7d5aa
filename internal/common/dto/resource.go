package dto

// Request payloads for the resource endpoints. Required-field checks are
// presence-only and live in the handlers, so none of these carry binding
// tags: an empty string must travel through binding and be judged there.

// CreateEstablishmentRequest represents a request to create an establishment
type CreateEstablishmentRequest struct {
	Name string `json:"name"`
}

// UpdateEstablishmentRequest represents a request to rename an establishment
type UpdateEstablishmentRequest struct {
	Name string `json:"name"`
}

// CreateEquipmentRequest represents a request to create an equipment record
type CreateEquipmentRequest struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	EstablishmentID uint   `json:"establishment_id"`
}

// UpdateEquipmentRequest represents a full replace of an equipment record
type UpdateEquipmentRequest struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	EstablishmentID uint   `json:"establishment_id"`
}

// CreateReportRequest represents a request to file a report
type CreateReportRequest struct {
	Content string `json:"content"`
}

// CreateMissionRequest represents a request to create a mission
type CreateMissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
