// Package report строит PDF-отчёт по статистике команд: таблицу и диаграмму.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"sports-stats/internal/models"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	Title    = "Informe de Estadísticas Deportivas"
	FileName = "informe.pdf"

	chartImage = "chart"
	rowHeight  = 18.0
)

// Header — порядок колонок таблицы отчёта.
var Header = []string{"Equipo", "PG", "PE", "PP", "Goles", "RA", "A", "TA", "TR", "Prob. Ganar", "Prob. Perder"}

var columnWidths = []float64{100, 36, 36, 36, 40, 36, 36, 36, 36, 64, 70}

// Options управляет не зависящими от данных частями документа.
type Options struct {
	// GeneratedAt записывается в метаданные PDF. Нулевое значение — текущее время.
	GeneratedAt time.Time
}

// TableRows возвращает строки таблицы: сначала заголовок, затем по строке на
// каждую статистику в исходном порядке.
func TableRows(stats []models.Statistic) [][]string {
	rows := make([][]string, 0, len(stats)+1)
	rows = append(rows, append([]string(nil), Header...))
	for _, s := range stats {
		rows = append(rows, []string{
			s.TeamName(),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Goals),
			strconv.Itoa(s.ShotsOnTarget),
			strconv.Itoa(s.Assists),
			strconv.Itoa(s.YellowCards),
			strconv.Itoa(s.RedCards),
			FormatProbability(s.WinProbability),
			FormatProbability(s.LossProbability),
		})
	}
	return rows
}

// FormatProbability округляет до двух знаков и оставляет хотя бы одну цифру
// после точки: 60 -> "60.0", 66.6666 -> "66.67".
func FormatProbability(v float64) string {
	rounded := math.Round(v*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Generate собирает PDF: заголовок, таблицу и диаграмму.
func Generate(stats []models.Statistic, opts Options) ([]byte, error) {
	chart, err := RenderChart(BuildSeries(stats))
	if err != nil {
		return nil, err
	}

	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetTitle(Title, true)
	pdf.SetAutoPageBreak(true, 36)
	tr := pdfText

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 32, tr(Title), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	writeTable(pdf, tr, TableRows(stats))
	pdf.Ln(18)

	pdf.RegisterImageOptionsReader(chartImage, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(chart))
	left, _, _, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	x := left + (pageWidth-2*left-400)/2
	pdf.ImageOptions(chartImage, x, pdf.GetY(), 400, 300, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfText перекодирует строку в cp1252 для встроенных шрифтов PDF. Символы вне
// cp1252 (например, кириллица) заменяются на "?".
func pdfText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, rows [][]string) {
	left, _, _, _ := pdf.GetMargins()
	tableWidth := 0.0
	for _, w := range columnWidths {
		tableWidth += w
	}
	pageWidth, _ := pdf.GetPageSize()
	startX := left + (pageWidth-2*left-tableWidth)/2

	// Заголовок: тёмно-синий фон, белый жирный шрифт, оранжевая линия снизу.
	pdf.SetX(startX)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0x1C, 0x32, 0x47)
	pdf.SetTextColor(245, 245, 245)
	for i, cell := range rows[0] {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(cell), "", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	y := pdf.GetY()
	pdf.SetDrawColor(255, 165, 0)
	pdf.SetLineWidth(2)
	pdf.Line(startX, y, startX+tableWidth, y)
	pdf.SetLineWidth(0.2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows[1:] {
		pdf.SetX(startX)
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], rowHeight, tr(cell), "", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
