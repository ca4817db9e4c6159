package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"vbdhotel/config"
	"vbdhotel/models"
)

// EmailService envía las notificaciones de reservación vía SMTP plano.
// Los valores de conexión salen del entorno; con host vacío el servicio
// no se construye y los envíos se omiten.
type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
	siteName string
}

// NewEmailServiceFromEnv devuelve nil cuando SMTP_HOST no está
// configurado; quien llama debe tolerar el servicio ausente.
func NewEmailServiceFromEnv(siteName string) *EmailService {
	host := config.GetEnv("SMTP_HOST")
	if host == "" {
		return nil
	}
	return &EmailService{
		host:     host,
		port:     config.GetEnvDefault("SMTP_PORT", "587"),
		username: config.GetEnv("SMTP_USER"),
		password: config.GetEnv("SMTP_PASSWORD"),
		from:     config.GetEnvDefault("SMTP_FROM", config.GetEnv("SMTP_USER")),
		siteName: siteName,
	}
}

func (s *EmailService) send(to, subject, htmlBody string) error {
	headers := []string{
		"From: " + fmt.Sprintf("%s <%s>", s.siteName, s.from),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg))
}

// ReservationConfirmation envía el correo de confirmación con el
// resumen de la estancia.
func (s *EmailService) ReservationConfirmation(user *models.User, hotel *models.Hotel, reservation *models.Reservation, nights int) error {
	subject := fmt.Sprintf("Confirmación de reservación %s", reservation.ReservationNumber)
	body := fmt.Sprintf(`
		<h2>¡Hola %s!</h2>
		<p>Tu reservación en <strong>%s</strong> está confirmada.</p>
		<ul>
			<li><strong>Número:</strong> %s</li>
			<li><strong>Check-in:</strong> %s</li>
			<li><strong>Check-out:</strong> %s</li>
			<li><strong>Noches:</strong> %d</li>
			<li><strong>Habitación:</strong> %s</li>
			<li><strong>Total:</strong> $%.2f MXN</li>
		</ul>
		<p>Gracias por reservar con %s.</p>`,
		user.Name, hotel.Name, reservation.ReservationNumber,
		reservation.Checkin.Format("02/01/2006"), reservation.Checkout.Format("02/01/2006"),
		nights, reservation.RoomType, reservation.Total, s.siteName)
	return s.send(user.Email, subject, body)
}

// ReservationCancellation notifica que la reservación fue cancelada.
func (s *EmailService) ReservationCancellation(user *models.User, reservation *models.Reservation) error {
	subject := fmt.Sprintf("Reservación %s cancelada", reservation.ReservationNumber)
	where := ""
	if reservation.Hotel != nil {
		where = " en " + reservation.Hotel.Name
	}
	body := fmt.Sprintf(`
		<h2>Hola %s</h2>
		<p>Tu reservación <strong>%s</strong>%s ha sido cancelada.</p>
		<p>Esperamos verte pronto en %s.</p>`,
		user.Name, reservation.ReservationNumber, where, s.siteName)
	return s.send(user.Email, subject, body)
}
