package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
	companyName    string
}

func NewReportService(payrollService payroll.PayrollService, companyName string) report.ReportService {
	return &ReportServiceImpl{
		payrollService: payrollService,
		companyName:    companyName,
	}
}

// GeneratePayslip implements report.ReportService.
func (r *ReportServiceImpl) GeneratePayslip(ctx context.Context, req payroll.SummaryRequest) ([]byte, string, error) {
	summary, err := r.payrollService.ComputeSummary(ctx, req)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	r.writeHeader(pdf, fmt.Sprintf("Bulletin de paie - %02d/%d", summary.Month, summary.Year))
	r.writePayslipBody(pdf, summary)

	data, err := output(pdf)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip-%s-%d-%02d.pdf", summary.Matricule, summary.Year, summary.Month)
	return data, filename, nil
}

// GenerateMonthlyRecap implements report.ReportService.
func (r *ReportServiceImpl) GenerateMonthlyRecap(ctx context.Context, req payroll.PeriodRequest) ([]byte, string, error) {
	summaries, err := r.payrollService.ComputeSummaryAll(ctx, req)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	r.writeHeader(pdf, fmt.Sprintf("Recapitulatif mensuel - %02d/%d", req.Month, req.Year))

	headers := []string{"Matricule", "Nom", "Presence", "Absence", "Conge", "Maladie", "HS", "Brut", "Acomptes", "Net"}
	widths := []float64{25, 55, 20, 20, 20, 20, 18, 30, 30, 30}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range summaries {
		cells := []string{
			s.Matricule,
			fmt.Sprintf("%s %s", s.FirstName, s.LastName),
			fmt.Sprintf("%.1f", s.Totals.PresenceDays),
			fmt.Sprintf("%.1f", s.Totals.AbsenceDays),
			fmt.Sprintf("%.1f", s.Totals.LeaveDays),
			fmt.Sprintf("%.1f", s.Totals.SickDays),
			fmt.Sprintf("%.1f", s.Totals.OvertimeHours),
			s.Totals.GrossPay.StringFixed(3),
			s.Totals.TotalApprovedAdvances.StringFixed(3),
			s.Totals.NetPay.StringFixed(3),
		}
		for i, c := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	data, err := output(pdf)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("recap-%d-%02d.pdf", req.Year, req.Month)
	return data, filename, nil
}

func (r *ReportServiceImpl) writeHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(12)
}

func (r *ReportServiceImpl) writePayslipBody(pdf *gofpdf.Fpdf, s payroll.Summary) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employe: %s %s (%s)", s.FirstName, s.LastName, s.Matricule))
	pdf.Ln(6)
	if s.Position != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Poste: %s", s.Position))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Jours ouvrables du mois: %d", s.Period.Workable))
	pdf.Ln(10)

	line := func(label, value string) {
		pdf.Cell(110, 7, label)
		pdf.CellFormat(50, 7, value, "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	line("Jours de presence", fmt.Sprintf("%.1f", s.Totals.PresenceDays))
	line("Jours d'absence", fmt.Sprintf("%.1f", s.Totals.AbsenceDays))
	line("Jours de conge", fmt.Sprintf("%.1f", s.Totals.LeaveDays))
	line("Jours de maladie", fmt.Sprintf("%.1f", s.Totals.SickDays))
	line("Jours feries payes", fmt.Sprintf("%.1f", s.Totals.HolidayDays))
	line("Heures supplementaires", fmt.Sprintf("%.1f", s.Totals.OvertimeHours))
	line("Assiduite", fmt.Sprintf("%d%%", s.AssiduityPercent))
	pdf.Ln(4)

	line("Taux journalier", s.Totals.DailyRate.StringFixed(3))
	line("Montant presence", s.Totals.PresenceAmount.StringFixed(3))
	line("Montant jours feries", s.Totals.HolidayAmount.StringFixed(3))
	line("Montant conges/maladie", s.Totals.LeaveSickAmount.StringFixed(3))
	line("Montant heures supp.", s.Totals.OvertimeAmount.StringFixed(3))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	line("Salaire brut", s.Totals.GrossPay.StringFixed(3))
	line("Acomptes approuves", s.Totals.TotalApprovedAdvances.StringFixed(3))
	pdf.SetFont("Helvetica", "B", 12)
	line("Net a payer", s.Totals.NetPay.StringFixed(3))
	if !s.Totals.CarriedDebt.IsZero() {
		line("Dette reportee", s.Totals.CarriedDebt.StringFixed(3))
	}
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
