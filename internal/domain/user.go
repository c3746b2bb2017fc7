package domain

// User is an input record for birthday lookups.
type User struct {
	Name     string `json:"name" yaml:"name"`
	Birthday string `json:"birthday" yaml:"birthday"` // YYYY.MM.DD
}

// Congratulation is a user whose (possibly shifted) birthday is coming up.
type Congratulation struct {
	Name               string `json:"name" yaml:"name"`
	CongratulationDate string `json:"congratulation_date" yaml:"congratulation_date"` // YYYY.MM.DD
}

// SkippedUser is an input record that could not be processed.
type SkippedUser struct {
	Index int
	Name  string
	Err   error
}

// BirthdayReport is the outcome of an upcoming birthdays lookup.
type BirthdayReport struct {
	Congratulations []Congratulation
	Skipped         []SkippedUser
}

// Names returns the names of congratulated users in order.
func (r *BirthdayReport) Names() []string {
	names := make([]string, 0, len(r.Congratulations))
	for _, c := range r.Congratulations {
		names = append(names, c.Name)
	}
	return names
}
