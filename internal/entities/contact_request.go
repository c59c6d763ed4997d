package entities

// ContactMessageRequest is the payload of the public contact form.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MissingField returns the name of the first required field that is empty.
// Phone is optional.
func (r *ContactMessageRequest) MissingField() (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"subject", r.Subject},
		{"message", r.Message},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name, true
		}
	}
	return "", false
}
