package registration

import "strings"

const SummaryHeading = "Registration Successful!"

// Summary is the confirmation shown after a successful submission.
type Summary struct {
	Heading string `json:"heading"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Gender  string `json:"gender"`
}

// buildSummary reads the confirmation from the form.
//
// The name line joins the three name parts with single spaces and trims only
// the ends, so an empty middle part leaves a double space. Gender falls back
// to "Female" whenever male is not checked, including when neither is.
func buildSummary(f Form) Summary {
	nameLine := strings.TrimSpace("Name: " + f.Value(InputFirstName) + " " + f.Value(InputLastName) + " " + f.Value(InputSurname))

	gender := "Female"
	if f.Checked(InputMale) {
		gender = "Male"
	}

	return Summary{
		Heading: SummaryHeading,
		Name:    strings.TrimPrefix(strings.TrimPrefix(nameLine, "Name:"), " "),
		Email:   f.Value(InputEmail),
		Country: f.SelectedLabel(InputCountry),
		Gender:  gender,
	}
}

// Lines returns the summary paragraphs as displayed.
func (s Summary) Lines() []string {
	return []string{
		strings.TrimSpace("Name: " + s.Name),
		"Email: " + s.Email,
		"Country: " + s.Country,
		"Gender: " + s.Gender,
	}
}
