package models

import "time"

// PendingRegistration is a sign-up request awaiting an admin decision.
// Approving or rejecting only records the decision; no user account is
// provisioned here.
type PendingRegistration struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	SubmittedAt time.Time `json:"submittedAt"`
}
