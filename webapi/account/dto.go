package account

import (
	"time"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// ClientPayload identifies the account owner: either an existing client by id
// or a profile to resolve by email and create when absent.
type ClientPayload struct {
	ID          string   `json:"id,omitempty" validate:"omitempty,uuid4"`
	FirstName   string   `json:"first_name,omitempty" validate:"required_without=ID,max=100"`
	LastName    string   `json:"last_name,omitempty" validate:"required_without=ID,max=100"`
	DateOfBirth string   `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      string   `json:"gender,omitempty"`
	Email       string   `json:"email,omitempty" validate:"required_without=ID,omitempty,email"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address,omitempty"`
	Privileges  []string `json:"privileges,omitempty"`
}

// CompanyPayload identifies the co-owning company for business accounts.
type CompanyPayload struct {
	ID      string `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name    string `json:"name,omitempty" validate:"required_without=ID,max=255"`
	TIN     string `json:"tin,omitempty" validate:"required_without=ID,max=20"`
	CRN     string `json:"crn,omitempty" validate:"required_without=ID,max=20"`
	Address string `json:"address,omitempty"`
}

// CreateAccountRequest is the request body for opening a new account.
type CreateAccountRequest struct {
	Client           ClientPayload   `json:"client" validate:"required"`
	Company          *CompanyPayload `json:"company,omitempty"`
	AvailableBalance float64         `json:"available_balance" validate:"gte=0"`
	Currency         string          `json:"currency" validate:"required,len=3,uppercase,alpha"`
}

func (p ClientPayload) toSpec() dto.ClientSpec {
	if p.ID != "" {
		id := uuid.MustParse(p.ID) // validated as uuid4 by the binder
		return dto.ClientSpec{ID: &id}
	}
	var dob time.Time
	if p.DateOfBirth != "" {
		dob, _ = time.Parse("2006-01-02", p.DateOfBirth)
	}
	return dto.ClientSpec{Profile: &dto.ClientCreate{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: dob,
		Gender:      p.Gender,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Privileges:  p.Privileges,
	}}
}

func (p CompanyPayload) toSpec() dto.CompanySpec {
	if p.ID != "" {
		id := uuid.MustParse(p.ID)
		return dto.CompanySpec{ID: &id}
	}
	return dto.CompanySpec{Profile: &dto.CompanyCreate{
		Name:    p.Name,
		TIN:     p.TIN,
		CRN:     p.CRN,
		Address: p.Address,
	}}
}
