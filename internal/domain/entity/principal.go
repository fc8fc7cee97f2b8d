package entity

const (
	PrincipalUser    = "user"
	PrincipalCompany = "company"
)

// Principal is the authenticated caller. It is either a UserPrincipal or a CompanyPrincipal.
type Principal interface {
	PrincipalID() string
	PrincipalEmail() string
	Kind() string
	sealed()
}

type UserPrincipal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Type     UserType `json:"type"`
	Phone    *string  `json:"phone,omitempty"`
	UserType string   `json:"userType"`
}

func (p UserPrincipal) PrincipalID() string    { return p.ID }
func (p UserPrincipal) PrincipalEmail() string { return p.Email }
func (p UserPrincipal) Kind() string           { return PrincipalUser }
func (UserPrincipal) sealed()                  {}

func (p UserPrincipal) IsAdmin() bool { return p.Type == UserTypeAdmin }

type CompanyPrincipal struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	CNPJ        string `json:"cnpj"`
	UserType    string `json:"userType"`
}

func (p CompanyPrincipal) PrincipalID() string    { return p.ID }
func (p CompanyPrincipal) PrincipalEmail() string { return p.Email }
func (p CompanyPrincipal) Kind() string           { return PrincipalCompany }
func (CompanyPrincipal) sealed()                  {}

// MapUserToPrincipal copies the allow-listed public fields only.
func MapUserToPrincipal(u *User) UserPrincipal {
	return UserPrincipal{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Type:     u.Type,
		Phone:    u.Phone,
		UserType: PrincipalUser,
	}
}

func MapCompanyToPrincipal(c *Company) CompanyPrincipal {
	return CompanyPrincipal{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		CNPJ:        c.CNPJ,
		UserType:    PrincipalCompany,
	}
}
