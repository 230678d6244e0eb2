package pdf

import (
	"bytes"
	"fmt"
	"time"

	"voyago/voyago/types"

	"github.com/jung-kurt/gofpdf"
)

// RenderItinerary generates the downloadable day-by-day itinerary and
// returns raw bytes (no filesystem needed).
func RenderItinerary(country string, duration int, days []types.ItineraryDay) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Voyago", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Trip overview ────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(170, 8, fmt.Sprintf("%d days in %s", duration, country), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(170, 6, "Generated "+time.Now().Format("02 Jan 2006, 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Day blocks ───────────────────────────────────────────
	for _, day := range days {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, fmt.Sprintf("  Day %d - %s", day.Day, day.City), "", 1, "L", true, 0, "")
		pdf.SetTextColor(40, 40, 40)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Ln(1)
		for _, activity := range day.Activities {
			pdf.SetX(24)
			pdf.MultiCell(162, 5, "- "+activity, "", "L", false)
		}
		pdf.Ln(3)
	}

	// ── Footer ───────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Voyago AI Travel Planner - Suggested plan only, verify opening hours and transport before travelling",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
