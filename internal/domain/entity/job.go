package entity

import "time"

type JobType string

const (
	JobTypeJunior  JobType = "JUNIOR"
	JobTypeTrainee JobType = "TRAINEE"
	JobTypeIntern  JobType = "INTERN"
)

type ContractType string

const (
	ContractCLT   ContractType = "CLT"
	ContractPJ    ContractType = "PJ"
	ContractOther ContractType = "OTHER"
)

type Modality string

const (
	ModalityHybrid Modality = "HYBRID"
	ModalityOnSite Modality = "ON_SITE"
	ModalityRemote Modality = "REMOTE"
)

type JobStatus string

const (
	JobActive   JobStatus = "ACTIVE"
	JobArchived JobStatus = "ARCHIVED"
)

type Job struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Prerequisites   string       `json:"prerequisites"`
	Benefits        string       `json:"benefits,omitempty"`
	Type            JobType      `json:"type"`
	TypeContract    ContractType `json:"typeContract"`
	SalaryMin       *float64     `json:"salaryMin,omitempty"`
	SalaryMax       *float64     `json:"salaryMax,omitempty"`
	Modality        Modality     `json:"modality"`
	FederalUnit     string       `json:"federalUnit,omitempty"`
	City            string       `json:"city,omitempty"`
	Affirmative     bool         `json:"affirmative"`
	AffirmativeType string       `json:"affirmativeType,omitempty"`
	Status          JobStatus    `json:"status"`
	CompanyID       string       `json:"companyId"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (j *Job) IsActive() bool { return j.Status == JobActive }
