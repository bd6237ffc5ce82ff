package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// ValidateLeadForm applies the intake form's field rules. Email may be
// empty; when present it must parse.
func ValidateLeadForm(input LeadFormInput) []ValidationError {
	var errors []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"First_Name", input.FirstName},
		{"Last_Name", input.LastName},
		{"Dealer", input.Dealer},
		{"Lead_Source", input.LeadSource},
		{"Lead_Types", input.LeadTypes},
		{"Meeting_Date", input.MeetingDate},
		{"Meeting_Time", input.MeetingTime},
		{"Full_Address", input.FullAddress},
		{"Street", input.Street},
		{"City", input.City},
		{"Province", input.Province},
		{"Zip_Code", input.ZipCode},
		{"Country", input.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errors = append(errors, ValidationError{r.field, "is required"})
		}
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"Email", "is invalid"})
		}
	}

	digits := nonDigits.ReplaceAllString(input.Mobile, "")
	if len(digits) < 10 {
		errors = append(errors, ValidationError{"Mobile", "must have at least 10 digits"})
	} else if len(digits) > 15 {
		errors = append(errors, ValidationError{"Mobile", "is too long"})
	}

	return errors
}
