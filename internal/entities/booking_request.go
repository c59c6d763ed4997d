package entities

// BookingRequest is the payload of the public booking form.
type BookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
	Date           string `json:"date"`
	TimeSlot       string `json:"timeSlot"`
	Services       string `json:"services"`
	EstimatedTotal string `json:"estimatedTotal"`
	Notes          string `json:"notes"`
}

// MissingField returns the name of the first required field that is empty,
// in form order. Services, estimatedTotal and notes are optional.
func (r *BookingRequest) MissingField() (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
		{"city", r.City},
		{"zipCode", r.ZipCode},
		{"date", r.Date},
		{"timeSlot", r.TimeSlot},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name, true
		}
	}
	return "", false
}
