package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

type stubRenderer struct {
	lastReport ports.InventoryReport
	err        error
}

func (r *stubRenderer) Render(report ports.InventoryReport) ([]byte, error) {
	r.lastReport = report
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-stub"), nil
}

type stubMailer struct {
	sent []ports.EmailMessage
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg ports.EmailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestInventoryService_SendReport_AllCompanies(t *testing.T) {
	companies := newStubCompanyRepo(
		domain.Company{NIT: "1", Name: "Acme"},
		domain.Company{NIT: "2", Name: "Globex"},
	)
	products := newStubProductRepo(
		domain.Product{ID: "p1", Code: "SKU-1", Name: "Widget", Price: 10, Currency: "USD", CompanyNIT: "1"},
	)
	renderer := &stubRenderer{}
	mailer := &stubMailer{}
	svc := NewInventoryService(companies, products, renderer, mailer)

	err := svc.SendReport(context.Background(), ports.SendReportInput{ToEmail: "boss@example.com"})
	if err != nil {
		t.Fatalf("send report: %v", err)
	}

	if len(renderer.lastReport.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(renderer.lastReport.Sections))
	}
	if len(renderer.lastReport.Sections[0].Products) != 1 {
		t.Fatalf("expected 1 product for Acme, got %d", len(renderer.lastReport.Sections[0].Products))
	}
	if len(renderer.lastReport.Sections[1].Products) != 0 {
		t.Fatalf("expected empty section for Globex")
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "boss@example.com" {
		t.Fatalf("unexpected recipient: %s", msg.To)
	}
	if msg.AttachmentName != "inventory_report.pdf" {
		t.Fatalf("unexpected attachment name: %s", msg.AttachmentName)
	}
	if len(msg.Attachment) == 0 {
		t.Fatalf("expected rendered attachment")
	}
	if msg.Subject == "" || msg.Body == "" {
		t.Fatalf("defaults not applied: %+v", msg)
	}
}

func TestInventoryService_SendReport_SingleCompany(t *testing.T) {
	companies := newStubCompanyRepo(
		domain.Company{NIT: "1", Name: "Acme"},
		domain.Company{NIT: "2", Name: "Globex"},
	)
	renderer := &stubRenderer{}
	mailer := &stubMailer{}
	svc := NewInventoryService(companies, newStubProductRepo(), renderer, mailer)

	err := svc.SendReport(context.Background(), ports.SendReportInput{
		ToEmail:    "boss@example.com",
		CompanyNIT: "2",
		Subject:    "Custom subject",
	})
	if err != nil {
		t.Fatalf("send report: %v", err)
	}

	if len(renderer.lastReport.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(renderer.lastReport.Sections))
	}
	if renderer.lastReport.Sections[0].Company.Name != "Globex" {
		t.Fatalf("unexpected company: %s", renderer.lastReport.Sections[0].Company.Name)
	}
	if mailer.sent[0].Subject != "Custom subject" {
		t.Fatalf("custom subject not used: %s", mailer.sent[0].Subject)
	}
}

func TestInventoryService_SendReport_UnknownCompany(t *testing.T) {
	svc := NewInventoryService(newStubCompanyRepo(), newStubProductRepo(), &stubRenderer{}, &stubMailer{})

	err := svc.SendReport(context.Background(), ports.SendReportInput{ToEmail: "boss@example.com", CompanyNIT: "missing"})
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestInventoryService_SendReport_MailerError(t *testing.T) {
	companies := newStubCompanyRepo(domain.Company{NIT: "1", Name: "Acme"})
	sendErr := errors.New("smtp down")
	svc := NewInventoryService(companies, newStubProductRepo(), &stubRenderer{}, &stubMailer{err: sendErr})

	if err := svc.SendReport(context.Background(), ports.SendReportInput{ToEmail: "boss@example.com"}); !errors.Is(err, sendErr) {
		t.Fatalf("expected mailer error, got %v", err)
	}
}

func TestInventoryService_SendReport_RenderError(t *testing.T) {
	companies := newStubCompanyRepo(domain.Company{NIT: "1", Name: "Acme"})
	renderErr := errors.New("render failed")
	mailer := &stubMailer{}
	svc := NewInventoryService(companies, newStubProductRepo(), &stubRenderer{err: renderErr}, mailer)

	if err := svc.SendReport(context.Background(), ports.SendReportInput{ToEmail: "boss@example.com"}); !errors.Is(err, renderErr) {
		t.Fatalf("expected render error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("nothing should be sent when rendering fails")
	}
}
