package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

const reportAttachmentName = "inventory_report.pdf"

// InventoryService builds the inventory report and hands it to the
// mailer: companies (one by NIT, or all) → per-company product list →
// rendered PDF → email attachment.
type InventoryService struct {
	companies ports.CompanyRepository
	products  ports.ProductRepository
	renderer  ports.ReportRenderer
	mailer    ports.EmailSender
}

func NewInventoryService(companies ports.CompanyRepository, products ports.ProductRepository, renderer ports.ReportRenderer, mailer ports.EmailSender) *InventoryService {
	return &InventoryService{
		companies: companies,
		products:  products,
		renderer:  renderer,
		mailer:    mailer,
	}
}

func (s *InventoryService) SendReport(ctx context.Context, input ports.SendReportInput) error {
	companies, err := s.selectCompanies(ctx, input.CompanyNIT)
	if err != nil {
		return err
	}

	report := ports.InventoryReport{
		GeneratedAt: time.Now().UTC(),
		Sections:    make([]ports.CompanyInventory, 0, len(companies)),
	}
	for _, company := range companies {
		products, err := s.products.FindByCompanyNIT(ctx, company.NIT)
		if err != nil {
			return fmt.Errorf("list products for %s: %w", company.NIT, err)
		}
		report.Sections = append(report.Sections, ports.CompanyInventory{
			Company:  company,
			Products: products,
		})
	}

	pdf, err := s.renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	subject := input.Subject
	if subject == "" {
		subject = "Inventory Report - " + report.GeneratedAt.Format("2006-01-02")
	}
	body := input.Body
	if body == "" {
		body = "Please find attached the inventory report with all products by company."
	}

	return s.mailer.Send(ctx, ports.EmailMessage{
		To:             input.ToEmail,
		Subject:        subject,
		Body:           body,
		Attachment:     pdf,
		AttachmentName: reportAttachmentName,
	})
}

func (s *InventoryService) selectCompanies(ctx context.Context, nit string) ([]domain.Company, error) {
	if nit == "" {
		return s.companies.FindAll(ctx)
	}
	company, err := s.companies.FindByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	return []domain.Company{*company}, nil
}
