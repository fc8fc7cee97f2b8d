package entity

import "time"

// Company posts jobs. Same secret-handling rules as User.
type Company struct {
	ID                   string
	CompanyName          string
	Email                string
	Password             string `json:"-"`
	CNPJ                 string
	About                string
	Phone                string
	Address              string
	City                 string
	State                string
	CEP                  string
	Website              string
	ProfileKey           string
	Profile              string
	MailConfirm          bool
	Policies             bool
	RecoverPasswordToken *string `json:"-"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type PublicCompany struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	CNPJ        string    `json:"cnpj"`
	About       string    `json:"about,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	Website     string    `json:"website,omitempty"`
	ProfileKey  string    `json:"profileKey,omitempty"`
	Profile     string    `json:"profile,omitempty"`
	MailConfirm bool      `json:"mailConfirm"`
	Policies    bool      `json:"policies"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Company) Public() PublicCompany {
	return PublicCompany{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		CNPJ:        c.CNPJ,
		About:       c.About,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		CEP:         c.CEP,
		Website:     c.Website,
		ProfileKey:  c.ProfileKey,
		Profile:     c.Profile,
		MailConfirm: c.MailConfirm,
		Policies:    c.Policies,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
