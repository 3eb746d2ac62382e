package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

func TestReportRenderer_Render(t *testing.T) {
	renderer := NewReportRenderer()

	out, err := renderer.Render(ports.InventoryReport{
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Sections: []ports.CompanyInventory{
			{
				Company: domain.Company{NIT: "900123", Name: "Acme"},
				Products: []domain.Product{
					{Code: "SKU-1", Name: "Widget", Price: 9.99, Currency: "USD", Characteristics: "blue, small"},
					{Code: "SKU-2", Name: "Gadget", Price: 19.5, Currency: "EUR"},
				},
			},
			{
				Company: domain.Company{NIT: "900456", Name: "Globex"},
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a pdf: %q", out[:min(8, len(out))])
	}
}

func TestReportRenderer_EmptyReport(t *testing.T) {
	renderer := NewReportRenderer()

	out, err := renderer.Render(ports.InventoryReport{GeneratedAt: time.Now()})
	if err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("empty report must still be a valid pdf")
	}
}
