package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EmployeeRequest is the wire payload for create and update. Update has
// full-replace semantics: fields omitted from the payload overwrite the stored
// row with their zero values, they are never merged.
type EmployeeRequest struct {
	Name                   string            `json:"name"`
	Address                string            `json:"address"`
	PhoneNumber            string            `json:"phone_number"`
	GovernmentID           string            `json:"government_id"`
	PreviousExperience     []ExperienceEntry `json:"previous_experience"`
	SalaryHistory          []SalaryEntry     `json:"salary_history"`
	CurrentPositionDetails string            `json:"current_position_details"`
}
