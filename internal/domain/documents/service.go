package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/domain/leave"
)

type EmployeeSource interface {
	Get(ctx context.Context, id int64) (employees.Employee, error)
}

type RequestSource interface {
	Get(ctx context.Context, id int64) (leave.LeaveRequest, error)
}

type Service struct {
	Store     StoreAPI
	Employees EmployeeSource
	Requests  RequestSource
	Dir       string
	Company   CompanyInfo
}

func NewService(store StoreAPI, employeeSource EmployeeSource, requestSource RequestSource, dir string, company CompanyInfo) *Service {
	return &Service{Store: store, Employees: employeeSource, Requests: requestSource, Dir: dir, Company: company}
}

// GenerateEmploymentCertificate renders a certificate PDF for the
// employee, writes it under the configured directory and records the
// document row.
func (s *Service) GenerateEmploymentCertificate(ctx context.Context, employeeID int64, purpose string) (Document, error) {
	employee, err := s.Employees.Get(ctx, employeeID)
	if err != nil {
		return Document{}, err
	}
	if purpose == "" {
		purpose = "official purposes"
	}

	now := time.Now()
	status := "Active Employee"
	if employee.ContractEndDate != nil && employee.ContractEndDate.Before(now) {
		status = fmt.Sprintf("Employment ended on %s", employee.ContractEndDate.Format("January 2, 2006"))
	}

	pdf := s.newLetterhead("CERTIFICATE OF EMPLOYMENT", now)
	pdf.Cell(0, 8, "TO WHOM IT MAY CONCERN:")
	pdf.Ln(10)
	writeParagraph(pdf, fmt.Sprintf(
		"This is to certify that %s (PESEL: %s) has been employed with %s since %s.",
		employee.FullName(), employee.Pesel, s.Company.Name, formatDate(employee.HireDate)))
	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", orNA(employee.Position)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", orNA(employee.Department)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employment Type: %s", employee.ContractType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Current Status: %s", status))
	pdf.Ln(10)
	writeParagraph(pdf, fmt.Sprintf("This certificate is issued upon request for %s.", purpose))
	s.writeSignature(pdf)

	name := fmt.Sprintf("employment_certificate_%s_%s", employee.LastName, now.Format("20060102"))
	return s.persist(ctx, pdf, employee.ID, TypeEmploymentCertificate, name, now)
}

// GenerateLeaveConfirmation renders a confirmation letter for a leave
// request, regardless of its decision state.
func (s *Service) GenerateLeaveConfirmation(ctx context.Context, requestID int64) (Document, error) {
	request, err := s.Requests.Get(ctx, requestID)
	if err != nil {
		return Document{}, err
	}
	employee, err := s.Employees.Get(ctx, request.EmployeeID)
	if err != nil {
		return Document{}, err
	}

	now := time.Now()
	pdf := s.newLetterhead("LEAVE CONFIRMATION LETTER", now)
	pdf.Cell(0, 8, fmt.Sprintf("Dear %s,", employee.FullName()))
	pdf.Ln(10)
	writeParagraph(pdf, fmt.Sprintf("This letter confirms that your leave request is currently %s.", request.Status))
	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("Leave Type: %s", request.LeaveType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Start Date: %s", request.StartDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("End Date: %s", request.EndDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Days: %d", request.DaysCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining Balance: %d days", employee.RemainingLeaveDays))
	if request.Reason != "" {
		pdf.Ln(10)
		writeParagraph(pdf, fmt.Sprintf("Reason: %s", request.Reason))
	}
	s.writeSignature(pdf)

	name := fmt.Sprintf("leave_confirmation_%s_%s", employee.LastName, now.Format("20060102"))
	return s.persist(ctx, pdf, employee.ID, TypeLeaveConfirmation, name, now)
}

func (s *Service) newLetterhead(title string, now time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, s.Company.Name)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	if s.Company.Address != "" {
		pdf.Cell(0, 6, s.Company.Address)
		pdf.Ln(6)
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", now.Format("January 2, 2006")))
	pdf.Ln(12)
	return pdf
}

func (s *Service) writeSignature(pdf *gofpdf.Fpdf) {
	pdf.Ln(16)
	pdf.Cell(0, 8, "Sincerely,")
	pdf.Ln(14)
	pdf.Cell(0, 8, "_______________________")
	pdf.Ln(7)
	if s.Company.HRManager != "" {
		pdf.Cell(0, 8, s.Company.HRManager)
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, "Human Resources Manager")
}

func (s *Service) persist(ctx context.Context, pdf *gofpdf.Fpdf, employeeID int64, docType, name string, now time.Time) (Document, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Document{}, err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.pdf", name, uuid.NewString()[:8]))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return Document{}, err
	}

	document := Document{
		EmployeeID:    employeeID,
		DocumentType:  docType,
		DocumentName:  name,
		FilePath:      path,
		GeneratedDate: &now,
	}
	id, err := s.Store.Create(ctx, document)
	if err != nil {
		return Document{}, err
	}
	document.ID = id
	document.CreatedAt = now
	return document, nil
}

func writeParagraph(pdf *gofpdf.Fpdf, text string) {
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(2)
}

func formatDate(value *time.Time) string {
	if value == nil {
		return "N/A"
	}
	return value.Format("January 2, 2006")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
