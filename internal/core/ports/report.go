package ports

import (
	"context"
	"time"

	"github.com/bizdata/business-api/internal/core/domain"
)

// CompanyInventory is one section of the inventory report: a company
// and the products it currently offers.
type CompanyInventory struct {
	Company  domain.Company
	Products []domain.Product
}

// InventoryReport is the renderer input.
type InventoryReport struct {
	GeneratedAt time.Time
	Sections    []CompanyInventory
}

// ReportRenderer turns an inventory report into a document (PDF).
type ReportRenderer interface {
	Render(report InventoryReport) ([]byte, error)
}

// EmailMessage is a single outbound email with an optional attachment.
type EmailMessage struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// EmailSender delivers a message. Implementations: AWS SES, a mock
// that logs and writes the attachment to disk, and the queue
// dispatcher that wraps either of them.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SendReportInput describes one inventory report request. When
// CompanyNIT is empty the report covers every company.
type SendReportInput struct {
	ToEmail    string
	Subject    string
	Body       string
	CompanyNIT string
}

type InventoryService interface {
	SendReport(ctx context.Context, input SendReportInput) error
}
