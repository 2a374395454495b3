package dto

import "time"

// StructuredResponse provides the base structured API response envelope
type StructuredResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// IssueCertificateResponse is the payload returned after a successful issuance
type IssueCertificateResponse struct {
	Hash       string `json:"hash" example:"0x9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	TxHash     string `json:"txHash" example:"0xabc123"`
	QRCodePath string `json:"qrCodePath" example:"/qrcodes/R100-1714041600000000000.png"`
}

// LoginResponse is the minimal profile payload returned on successful login
type LoginResponse struct {
	RollNumber  string `json:"rollNumber" example:"R100"`
	StudentName string `json:"studentName" example:"Asha"`
}

// StudentProfile carries the profile fields shown alongside certificates
type StudentProfile struct {
	RollNumber string   `json:"rollNumber" example:"R100"`
	Name       string   `json:"name" example:"Asha"`
	MailID     string   `json:"mailId" example:"asha@school.edu"`
	Class      string   `json:"class,omitempty" example:"XII-A"`
	Department string   `json:"department,omitempty" example:"Computer Science"`
	YearOfPass *int     `json:"yearOfPass,omitempty" example:"2025"`
	Percentage *float64 `json:"percentage,omitempty" example:"91.5"`
}

// CertificateResponse is one certificate joined with its owner's profile
type CertificateResponse struct {
	ID               string    `json:"id" example:"0x9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Name             string    `json:"name" example:"Asha"`
	PDFDownloadURL   string    `json:"pdfDownloadUrl" example:"/certificates/7d7e3f.pdf"`
	PhotoFilePath    string    `json:"photoFilePath" example:"/photos/18ac2b.jpg"`
	QRCodePath       string    `json:"qrCodePath" example:"/qrcodes/R100-1714041600000000000.png"`
	BlockchainTxHash string    `json:"blockchainTxHash" example:"0xabc123"`
	IssueTimestamp   time.Time `json:"issueTimestamp"`
	Department       string    `json:"department,omitempty" example:"Computer Science"`
	YearOfPass       *int      `json:"yearOfPass,omitempty" example:"2025"`
	StudentClass     string    `json:"studentClass,omitempty" example:"XII-A"`
	Percentage       *float64  `json:"percentage,omitempty" example:"91.5"`
}

// StudentCertificatesResponse is the student certificate listing payload
type StudentCertificatesResponse struct {
	Profile      *StudentProfile       `json:"profile"`
	Certificates []CertificateResponse `json:"certificates"`
}

// ChainDetails carries the raw on-chain fields of a verification lookup
type ChainDetails struct {
	Issuer    string `json:"issuer" example:"0x9C9ad0F8cbCADbDf2f8E548730b5Cc6F826633A2"`
	Timestamp string `json:"timestamp" example:"1714041600"`
	IsValid   bool   `json:"isValid" example:"true"`
	StudentID string `json:"studentId" example:"R100"`
}

// CertificateMetadata is the off-chain enrichment attached to a VALID result.
// It is null when neither store holds a record for the hash.
type CertificateMetadata struct {
	StudentID      string `json:"studentId" example:"R100"`
	StudentName    string `json:"studentName" example:"Asha"`
	Department     string `json:"department,omitempty" example:"Computer Science"`
	YearOfPass     *int   `json:"yearOfPass,omitempty" example:"2025"`
	IssueDate      string `json:"issueDate" example:"23 Apr 2025 12:01"`
	PDFDownloadURL string `json:"pdfDownloadUrl" example:"/certificates/7d7e3f.pdf"`
	PhotoFilePath  string `json:"photoFilePath" example:"/photos/18ac2b.jpg"`
}

// VerifyHashResponse is the verifier payload
type VerifyHashResponse struct {
	Status            string               `json:"status" enums:"VALID,INVALID" example:"VALID"`
	BlockchainDetails ChainDetails         `json:"blockchainDetails"`
	Metadata          *CertificateMetadata `json:"metadata"`
}
