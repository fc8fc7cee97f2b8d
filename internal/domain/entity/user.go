package entity

import "time"

type UserType string

const (
	UserTypeUser  UserType = "USER"
	UserTypeAdmin UserType = "ADMIN"
)

// User is a job seeker (or an admin). Password holds the bcrypt hash.
// Password and RecoverPasswordToken never leave the service boundary; responses use PublicUser.
type User struct {
	ID                   string
	Name                 string
	Email                string
	Password             string `json:"-"`
	CPF                  *string
	Phone                *string
	MainPhone            string
	City                 string
	State                string
	Type                 UserType
	MailConfirm          bool
	RecoverPasswordToken *string `json:"-"`
	ProfileKey           string
	Profile              string
	Policies             bool
	IP                   string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (u *User) IsAdmin() bool { return u.Type == UserTypeAdmin }

type PublicUser struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CPF         *string   `json:"cpf,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	MainPhone   string    `json:"mainPhone,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Type        UserType  `json:"type"`
	MailConfirm bool      `json:"mailConfirm"`
	ProfileKey  string    `json:"profileKey,omitempty"`
	Profile     string    `json:"profile,omitempty"`
	Policies    bool      `json:"policies"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CPF:         u.CPF,
		Phone:       u.Phone,
		MainPhone:   u.MainPhone,
		City:        u.City,
		State:       u.State,
		Type:        u.Type,
		MailConfirm: u.MailConfirm,
		ProfileKey:  u.ProfileKey,
		Profile:     u.Profile,
		Policies:    u.Policies,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
