package documents

import "time"

const (
	TypeEmploymentCertificate = "Employment Certificate"
	TypeLeaveConfirmation     = "Leave Confirmation"
)

type Document struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employeeId"`
	DocumentType  string     `json:"documentType"`
	DocumentName  string     `json:"documentName"`
	FilePath      string     `json:"filePath,omitempty"`
	GeneratedDate *time.Time `json:"generatedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CompanyInfo is the letterhead used on generated documents.
type CompanyInfo struct {
	Name      string
	Address   string
	HRManager string
}
