package submission

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"portfolio/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

// HoneypotField is the hidden form input humans never fill in.
const HoneypotField = "website"

const AgeGroupRequiredMessage = "Please select an age group for academy enrollment."

var ErrSpamSuspected = errors.New("submission flagged as spam")

// RawSubmission is the contact form exactly as posted.
type RawSubmission struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	Subject      string `form:"subject"`
	Message      string `form:"message"`
	InterestType string `form:"interest_type"`
	AgeGroup     string `form:"age_group"`
	Honeypot     string `form:"website"`
}

// ValidationError carries one message per offending form field and the
// posted input for re-display.
type ValidationError struct {
	Fields map[string]string
	Input  RawSubmission
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	return fmt.Sprintf("invalid submission: %s", strings.Join(names, ", "))
}

type contactFields struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,max=254,email"`
	Phone   string `form:"phone" validate:"required,max=20"`
	Subject string `form:"subject" validate:"required,max=200"`
	Message string `form:"message" validate:"required"`
}

// Validator checks contact form payloads. It holds no per-request state and
// is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})

	return &Validator{validate: v}
}

// Validate turns raw input into a submission stamped with now. It returns
// ErrSpamSuspected when the honeypot is filled, whatever else was posted,
// and *ValidationError when any field is rejected.
func (v *Validator) Validate(raw RawSubmission, now time.Time) (models.ContactSubmission, error) {
	if strings.TrimSpace(raw.Honeypot) != "" {
		return models.ContactSubmission{}, ErrSpamSuspected
	}

	in := contactFields{
		Name:    strings.TrimSpace(raw.Name),
		Email:   strings.TrimSpace(raw.Email),
		Phone:   strings.TrimSpace(raw.Phone),
		Subject: strings.TrimSpace(raw.Subject),
		Message: strings.TrimSpace(raw.Message),
	}

	fields := make(map[string]string)

	if err := v.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.ContactSubmission{}, err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = message(fe)
		}
	}

	interest := models.InterestType(strings.TrimSpace(raw.InterestType))
	if interest == "" {
		interest = models.InterestGeneral
	}
	if !interest.Valid() {
		fields["interest_type"] = invalidChoice(string(interest))
	}

	age := models.AgeGroup(strings.TrimSpace(raw.AgeGroup))
	switch {
	case age != models.AgeGroupNone && !age.Valid():
		fields["age_group"] = invalidChoice(string(age))
	case age == models.AgeGroupNone && interest.NeedsAgeGroup():
		fields["age_group"] = AgeGroupRequiredMessage
	}

	if len(fields) > 0 {
		return models.ContactSubmission{}, &ValidationError{Fields: fields, Input: raw}
	}

	return models.ContactSubmission{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Subject:      in.Subject,
		Message:      in.Message,
		InterestType: interest,
		AgeGroup:     age,
		SubmittedAt:  now,
	}, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	}

	return "Enter a valid value."
}

func invalidChoice(value string) string {
	return fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value)
}
