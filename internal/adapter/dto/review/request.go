package review

// UpdateStatusRequest represents the request to change a record's status
type UpdateStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// ResolveRequest represents the request to resolve a legacy record
type ResolveRequest struct {
	ID string `json:"id" validate:"required"`
}

// DashboardRequest represents query parameters for the dashboard page
type DashboardRequest struct {
	Query string `query:"q"`
}
