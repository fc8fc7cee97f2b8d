package entity

import "time"

type CandidacyStatus string

const (
	CandidacyInProgress CandidacyStatus = "IN_PROGRESS"
	CandidacyClosed     CandidacyStatus = "CLOSED"
)

type Candidacy struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	JobID         string          `json:"jobId"`
	Status        CandidacyStatus `json:"status"`
	DateCandidacy time.Time       `json:"dateCandidacy"`
	DateClosing   *time.Time      `json:"dateClosing,omitempty"`
}

type SavedJob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	JobID     string    `json:"jobId"`
	SavedDate time.Time `json:"savedDate"`
}
