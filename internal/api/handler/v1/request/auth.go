package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/mealbridge/mealbridge-api/internal/domain"
)

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	ErrMissingFields = errors.New("Missing fields")
	ErrInvalidRole   = errors.New("Invalid role")

	errWeakPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate enforces the registration contract: all fields present, a
// registrable role (ADMIN accounts are never self-service) and a password
// that survives the strength policy. Check order matters: presence and role
// violations carry fixed messages the clients match on.
func (req *RegisterRequest) Validate() error {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return ErrMissingFields
	}

	valid := false
	for _, role := range domain.RegistrableRoles {
		if domain.Role(req.Role) == role {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidRole
	}

	passwordExp := regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errWeakPassword
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
