package booking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderConfirmation renders a one-page PDF confirming b.
func RenderConfirmation(b *Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Booking ID : " + b.ID,
		"Hotel      : " + b.HotelName,
		"Location   : " + b.HotelLocation,
		"Room       : " + b.RoomNumber,
		"Check-in   : " + FormatDate(b.CheckIn),
		"Check-out  : " + FormatDate(b.CheckOut),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	nights := b.Nights()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Price per night: %.2f", b.RoomPrice))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total (%d nights): %.2f", nights, b.RoomPrice*float64(nights)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation failed: %w", err)
	}
	return buf.Bytes(), nil
}
