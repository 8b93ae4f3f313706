package infra

// pdf.go — Monthly closing report rendered with go-pdf/fpdf.
// A4 portrait, one page: store header, revenue summary table, MEI position.
// The output file is saved to storagePath/fechamento_{ano}_{mes}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"acaimanager/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GerarRelatorioPDF renders the closing report for one month.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GerarRelatorioPDF(dados *dto.RelatorioFechamento, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("fechamento_%d_%02d.pdf", dados.Ano, dados.Mes)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	titulo := dados.NomeLoja
	if titulo == "" {
		titulo = "Minha Loja"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, titulo, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Fechamento mensal — %02d/%d", dados.Mes, dados.Ano), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(6)

	// ── Summary table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.55
	col2 := contentW * 0.45

	linha := func(label, valor string, destaque bool) {
		if destaque {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.CellFormat(col1, 8, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 8, valor, "B", 1, "R", false, 0, "")
	}

	linha("Faturamento do mês", "R$ "+dados.Faturamento.StringFixed(2), true)
	linha("Total de vendas", fmt.Sprintf("%d", dados.TotalVendas), false)
	linha("Lucro estimado", "R$ "+dados.Lucro.StringFixed(2), false)
	linha("Despesas do mês", "R$ "+dados.Despesas.StringFixed(2), false)
	linha("Transferência PF", "R$ "+dados.TransferenciaPF.StringFixed(2), false)
	pdf.Ln(8)

	// ── MEI position ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, "Situação MEI", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	linha("Faturamento anual acumulado", "R$ "+dados.MeiAnual.StringFixed(2), false)
	linha("Limite anual", "R$ "+dados.MeiLimite.StringFixed(2), false)
	linha("Status", dados.MeiStatus, true)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
