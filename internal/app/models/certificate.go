package models

import "time"

// Certificate represents an issued certificate. Records are immutable once
// created: the content hash is derived from the PDF bytes and doubles as the
// on-chain identifier, so there is no update or delete path.
type Certificate struct {
	StudentID        string    `json:"-"`
	CertificateHash  string    `json:"certificateHash"`
	PDFFilePath      string    `json:"pdfFilePath"`
	PhotoFilePath    string    `json:"photoFilePath"`
	QRCodePath       string    `json:"qrCodePath"`
	BlockchainTxHash string    `json:"blockchainTxHash"`
	IssueTimestamp   time.Time `json:"issueTimestamp"`
}
