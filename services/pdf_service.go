package services

import (
	"fmt"
	"os"
	"path/filepath"

	"vbdhotel/models"

	"github.com/jung-kurt/gofpdf"
)

// PDFService genera los comprobantes de reservación en disco. Los
// archivos quedan bajo uploadsDir y se sirven por la ruta de descarga.
type PDFService struct {
	uploadsDir string
	siteName   string
}

func NewPDFService(uploadsDir, siteName string) *PDFService {
	return &PDFService{uploadsDir: uploadsDir, siteName: siteName}
}

// Path devuelve la ruta en disco del comprobante de una reservación.
func (s *PDFService) Path(reservationID uint) string {
	return filepath.Join(s.uploadsDir, fmt.Sprintf("reservation_%d.pdf", reservationID))
}

// ReservationConfirmation escribe el PDF de confirmación y devuelve la
// URL pública con la que se guarda en la reservación.
func (s *PDFService) ReservationConfirmation(reservation *models.Reservation, hotel *models.Hotel, user *models.User, nights int) (string, error) {
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(s.siteName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr("Confirmación de Reservación"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Número de reservación: "+reservation.ReservationNumber), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	rows := [][2]string{
		{"Huésped", user.Name},
		{"Email", user.Email},
		{"Hotel", hotel.Name},
		{"Ubicación", hotel.Location},
		{"Check-in", reservation.Checkin.Format("02/01/2006")},
		{"Check-out", reservation.Checkout.Format("02/01/2006")},
		{"Noches", fmt.Sprintf("%d", nights)},
		{"Habitación", reservation.RoomType},
		{"Adultos", fmt.Sprintf("%d", reservation.Adults)},
		{"Niños", fmt.Sprintf("%d", reservation.Children)},
		{"Estado", reservation.Status},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Total: $%.2f MXN", reservation.Total)), "", 1, "L", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Presente este comprobante al llegar al hotel. "+
		"Las cancelaciones están sujetas a la política vigente del sitio."), "", "L", false)

	path := s.Path(reservation.ID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return fmt.Sprintf("/reservation-pdf/%d", reservation.ID), nil
}
