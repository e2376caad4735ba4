package review

// MutationResponse is the body returned by both mutation endpoints on
// success. The dashboard script keys off the success field.
type MutationResponse struct {
	Success bool `json:"success"`
}
