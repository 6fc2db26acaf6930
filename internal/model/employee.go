package model

// ExperienceEntry is one item of an employee's previous_experience list.
type ExperienceEntry struct {
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Years    float64 `json:"years"`
}

// SalaryEntry is one item of an employee's salary_history list.
type SalaryEntry struct {
	Year     int     `json:"year"`
	Salary   float64 `json:"salary"`
	Currency string  `json:"currency"`
	Position string  `json:"position"`
}

// Employee is the stored record. The two history lists live in the row as
// serialized JSON and must round-trip without losing entries or their order.
type Employee struct {
	ID                     int64             `json:"id"`
	Name                   string            `json:"name"`
	Address                string            `json:"address"`
	PhoneNumber            string            `json:"phone_number"`
	GovernmentID           string            `json:"government_id"`
	PreviousExperience     []ExperienceEntry `json:"previous_experience"`
	SalaryHistory          []SalaryEntry     `json:"salary_history"`
	CurrentPositionDetails string            `json:"current_position_details"`
}
