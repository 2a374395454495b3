package dto

// CreateStudentRequest is the body of the admin account creation endpoint.
// Roll number, mail, password and name are required; the rest of the profile
// is optional.
type CreateStudentRequest struct {
	RollNumber   string   `json:"rollNumber" binding:"required" example:"R100"`
	MailID       string   `json:"mailId" binding:"required" example:"asha@school.edu"`
	Password     string   `json:"password" binding:"required" example:"pw123"`
	StudentName  string   `json:"studentName" binding:"required" example:"Asha"`
	StudentClass string   `json:"studentClass" example:"XII-A"`
	Department   string   `json:"department" example:"Computer Science"`
	YearOfPass   *int     `json:"yearOfPass" example:"2025"`
	Percentage   *float64 `json:"percentage" example:"91.5"`
}

// LoginRequest is the body of the student login endpoint.
type LoginRequest struct {
	RollNumber string `json:"rollNumber" binding:"required" example:"R100"`
	Password   string `json:"password" binding:"required" example:"pw123"`
}

// VerifyHashRequest is the body of the verifier endpoint.
type VerifyHashRequest struct {
	CertificateHash string `json:"certificateHash" binding:"required" example:"0x9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}
