// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/report"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateSalesReport renders a sales summary as a PDF document
func (s *Service) GenerateSalesReport(storeName string, summary *report.SalesSummary) (*bytes.Buffer, error) {
	data := reportData{
		StoreName:   storeName,
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
		From:        summary.From.Format("02/01/2006"),
		To:          summary.To.AddDate(0, 0, -1).Format("02/01/2006"),
		Summary:     summary,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data reportData) (string, error) {
	tmpl := template.Must(template.New("sales_report").Parse(salesReportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// reportData represents the data passed to the sales report template
type reportData struct {
	StoreName   string
	GeneratedAt string
	From        string
	To          string
	Summary     *report.SalesSummary
}

// Sales report HTML template
const salesReportTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Relatório de Vendas</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        h1 {
            font-size: 24px;
            color: #2563eb;
            margin-bottom: 4px;
        }
        .meta {
            color: #666;
            font-size: 12px;
            margin-bottom: 24px;
        }
        .totals {
            display: flex;
            gap: 24px;
            margin-bottom: 24px;
        }
        .totals div {
            border: 1px solid #eee;
            border-radius: 6px;
            padding: 12px 18px;
        }
        .totals .label {
            font-size: 11px;
            color: #666;
            text-transform: uppercase;
        }
        .totals .value {
            font-size: 20px;
            font-weight: bold;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 24px;
        }
        th, td {
            border-bottom: 1px solid #eee;
            padding: 8px;
            text-align: left;
            font-size: 12px;
        }
        th {
            background: #f8fafc;
            text-transform: uppercase;
            font-size: 10px;
            color: #666;
        }
        .num { text-align: right; }
    </style>
</head>
<body>
    <h1>{{.StoreName}} — Relatório de Vendas</h1>
    <div class="meta">Período {{.From}} a {{.To}} · gerado em {{.GeneratedAt}}</div>

    <div class="totals">
        <div>
            <div class="label">Pedidos</div>
            <div class="value">{{.Summary.TotalOrders}}</div>
        </div>
        <div>
            <div class="label">Faturamento</div>
            <div class="value">R$ {{.Summary.TotalRevenue}}</div>
        </div>
        <div>
            <div class="label">Ticket médio</div>
            <div class="value">R$ {{.Summary.AvgOrderValue}}</div>
        </div>
    </div>

    <h3>Vendas por dia</h3>
    <table>
        <tr><th>Data</th><th class="num">Pedidos</th><th class="num">Faturamento</th></tr>
        {{range .Summary.DailySales}}
        <tr><td>{{.Date}}</td><td class="num">{{.Orders}}</td><td class="num">R$ {{.Revenue}}</td></tr>
        {{end}}
    </table>

    <h3>Pedidos por status</h3>
    <table>
        <tr><th>Status</th><th class="num">Pedidos</th><th class="num">Valor</th></tr>
        {{range .Summary.SalesByStatus}}
        <tr><td>{{.Status}}</td><td class="num">{{.Count}}</td><td class="num">R$ {{.Value}}</td></tr>
        {{end}}
    </table>

    <h3>Produtos mais vendidos</h3>
    <table>
        <tr><th>Produto</th><th class="num">Unidades</th><th class="num">Faturamento</th></tr>
        {{range .Summary.TopProducts}}
        <tr><td>{{.ProductName}}</td><td class="num">{{.TotalSold}}</td><td class="num">R$ {{.Revenue}}</td></tr>
        {{end}}
    </table>
</body>
</html>
`
