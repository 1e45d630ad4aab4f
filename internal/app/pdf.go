package app

import (
	"github.com/jung-kurt/gofpdf"
)

// writePDF renders summaries as a simple A4 document: a bold heading per input
// followed by its bullet points. Text is translated to the core font's
// code page, so characters outside cp1252 degrade.
func writePDF(summaries []Summary, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	for i, s := range summaries {
		if i > 0 {
			pdf.Ln(6)
		}
		heading := s.Title
		if heading == "" {
			heading = s.Input
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, tr(heading), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(2)
		if len(s.Points) == 0 {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(0, 5, "No summary available.", "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		for _, p := range s.Points {
			pdf.MultiCell(0, 5, tr("- "+p), "", "L", false)
			pdf.Ln(1)
		}
	}
	return pdf.OutputFileAndClose(outPath)
}
