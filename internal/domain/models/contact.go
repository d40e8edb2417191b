package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InterestType string

const (
	InterestGeneral InterestType = "general"
	InterestAcademy InterestType = "academy"
	InterestBoth    InterestType = "both"
)

func (t InterestType) Valid() bool {
	switch t {
	case InterestGeneral, InterestAcademy, InterestBoth:
		return true
	}
	return false
}

// NeedsAgeGroup reports whether the interest implies an academy enrollment.
func (t InterestType) NeedsAgeGroup() bool {
	return t == InterestAcademy || t == InterestBoth
}

type AgeGroup string

const (
	AgeGroupNone  AgeGroup = ""
	AgeGroupU6    AgeGroup = "U6"
	AgeGroupU8    AgeGroup = "U8"
	AgeGroupU10   AgeGroup = "U10"
	AgeGroupU12   AgeGroup = "U12"
	AgeGroupU15   AgeGroup = "U15"
	AgeGroupOther AgeGroup = "other"
)

func (g AgeGroup) Valid() bool {
	switch g {
	case AgeGroupU6, AgeGroupU8, AgeGroupU10, AgeGroupU12, AgeGroupU15, AgeGroupOther:
		return true
	}
	return false
}

// Choice is a value/label pair for form selects.
type Choice struct {
	Value string
	Label string
}

var InterestChoices = []Choice{
	{string(InterestGeneral), "General Inquiry"},
	{string(InterestAcademy), "Academy Enrollment"},
	{string(InterestBoth), "Both"},
}

var AgeGroupChoices = []Choice{
	{string(AgeGroupU6), "Under 6"},
	{string(AgeGroupU8), "Under 8"},
	{string(AgeGroupU10), "Under 10"},
	{string(AgeGroupU12), "Under 12"},
	{string(AgeGroupU15), "Under 15"},
	{string(AgeGroupOther), "Other"},
}

// ContactSubmission is a visitor message. Only IsRead and AdminNotes change
// after creation.
type ContactSubmission struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Subject      string       `json:"subject"`
	Message      string       `json:"message"`
	InterestType InterestType `json:"interest_type"`
	AgeGroup     AgeGroup     `json:"age_group"`
	SubmittedAt  time.Time    `json:"submitted_at"`
	IsRead       bool         `json:"is_read"`
	AdminNotes   string       `json:"admin_notes"`
}

func (s ContactSubmission) String() string {
	return fmt.Sprintf("%s - %s (%s)", s.Name, s.Subject, s.SubmittedAt.Format("2006-01-02"))
}
