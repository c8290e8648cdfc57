package client

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/i18n"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormError reports invalid form input with a translated summary.
type FormError struct {
	Message string
	Fields  []string
}

func (e *FormError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// validateForm runs struct validation and maps the first failing tag to a
// translated message. Per-field details follow the tag.
func validateForm(form any, tr *i18n.Translator, messages map[string]string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate form")
	}

	out := &FormError{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out.Fields = append(out.Fields, field+" is required")
		case "min":
			out.Fields = append(out.Fields, field+" must be at least "+fe.Param()+" characters")
		case "len":
			out.Fields = append(out.Fields, field+" must be exactly "+fe.Param()+" characters")
		case "email":
			out.Fields = append(out.Fields, field+" must be a valid email")
		case "eqfield":
			out.Fields = append(out.Fields, field+" must match "+strings.ToLower(fe.Param()))
		default:
			out.Fields = append(out.Fields, field+" is invalid")
		}

		if out.Message == "" {
			key, ok := messages[fe.Field()+"."+fe.Tag()]
			if !ok {
				key = messages[fe.Tag()]
			}
			if key != "" {
				out.Message = tr.T(key)
			}
		}
	}
	if out.Message == "" {
		out.Message = tr.T("Error")
	}
	return out
}

// DeviceForm is the add-device dialog.
type DeviceForm struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
	Watts    string `validate:"required,number"`
	Color    string `validate:"omitempty,hexcolor"`
	Image    string
	Email    string `validate:"required,email"`
	TeamCode string `validate:"omitempty,len=6"`
}

var deviceMessages = map[string]string{
	"required":       "Por favor completa todos los campos obligatorios",
	"Watts.number":   "Los watts deben ser un numero positivo",
	"Color.hexcolor": "Color invalido",
	"TeamCode.len":   "El código del equipo debe tener 6 caracteres",
	"email":          "Please enter a valid email address",
}

// Validate checks the form and returns the request to send.
func (f DeviceForm) Validate(tr *i18n.Translator) (NewDevice, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Watts = strings.TrimSpace(f.Watts)
	f.Email = strings.TrimSpace(f.Email)
	f.TeamCode = strings.ToUpper(strings.TrimSpace(f.TeamCode))

	if err := validateForm(f, tr, deviceMessages); err != nil {
		return NewDevice{}, err
	}

	watts, err := strconv.ParseFloat(f.Watts, 64)
	if err != nil || watts <= 0 {
		return NewDevice{}, &FormError{
			Message: tr.T("Los watts deben ser un numero positivo"),
			Fields:  []string{"watts must be greater than 0"},
		}
	}

	return NewDevice{
		Name:     f.Name,
		Category: f.Category,
		Watts:    watts,
		Color:    strings.TrimSpace(f.Color),
		Image:    strings.TrimSpace(f.Image),
		Email:    f.Email,
		TeamCode: f.TeamCode,
	}, nil
}

// CreateTeamForm is the create-team dialog.
type CreateTeamForm struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
}

var createTeamMessages = map[string]string{
	"Name.required": "El nombre del equipo debe tener al menos 3 caracteres",
	"Name.min":      "El nombre del equipo debe tener al menos 3 caracteres",
	"required":      "All fields must be filled.",
	"email":         "Please enter a valid email address",
}

// Validate trims and checks the form.
func (f CreateTeamForm) Validate(tr *i18n.Translator) (CreateTeamForm, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f, validateForm(f, tr, createTeamMessages)
}

// JoinTeamForm is the join-team dialog.
type JoinTeamForm struct {
	Name  string `validate:"required"`
	Code  string `validate:"required,len=6"`
	Email string `validate:"required,email"`
}

var joinTeamMessages = map[string]string{
	"Name.required": "Por favor, ingresa el nombre y el código del equipo",
	"Code.required": "Por favor, ingresa el nombre y el código del equipo",
	"Code.len":      "El código del equipo debe tener 6 caracteres",
	"required":      "All fields must be filled.",
	"email":         "Please enter a valid email address",
}

// Validate trims, upper-cases the code and checks the form.
func (f JoinTeamForm) Validate(tr *i18n.Translator) (JoinTeamForm, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.Email = strings.TrimSpace(f.Email)
	return f, validateForm(f, tr, joinTeamMessages)
}

// CredentialsForm is the sign-in and sign-up screen. Confirm is only checked when set.
type CredentialsForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"omitempty,eqfield=Password"`
}

var credentialsMessages = map[string]string{
	"required":        "All fields must be filled.",
	"email":           "Please enter a valid email address",
	"Password.min":    "Password must be at least 6 characters",
	"Confirm.eqfield": "Passwords do not match",
}

// Validate trims the email and checks the form.
func (f CredentialsForm) Validate(tr *i18n.Translator) (CredentialsForm, error) {
	f.Email = strings.TrimSpace(f.Email)
	return f, validateForm(f, tr, credentialsMessages)
}
