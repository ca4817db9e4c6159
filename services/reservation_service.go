package services

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"vbdhotel/constants"
	"vbdhotel/errors"
	"vbdhotel/models"

	"gorm.io/gorm"
)

const base36Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ParseDate interpreta las fechas "2006-01-02" de los requests.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, errors.Validation("Fecha inválida, se espera AAAA-MM-DD")
	}
	return parsed, nil
}

// Nights cuenta las noches de la estancia: techo de las horas entre
// fechas dividido entre 24. Siempre ≥ 1 para intervalos válidos.
func Nights(checkin, checkout time.Time) int {
	return int(math.Ceil(checkout.Sub(checkin).Hours() / 24))
}

func randomBase36(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(base36Charset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = base36Charset[idx.Int64()]
	}
	return string(out), nil
}

// GenerateNumber arma un identificador legible:
// PREFIJO-<últimos 6 dígitos del timestamp>-<6 caracteres base36>.
func GenerateNumber(prefix string) (string, error) {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix, err := randomBase36(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, timestamp[len(timestamp)-6:], suffix), nil
}

// ReservationService implementa el motor de reservaciones: validación
// de fechas, costo por noche, disponibilidad por capacidad fija y las
// transiciones de estado permitidas.
type ReservationService struct {
	db    *gorm.DB
	cfg   *ConfigService
	audit AuditLogger
	pdf   *PDFService
	mail  *EmailService
}

// AuditLogger es lo que el motor necesita de la bitácora.
type AuditLogger interface {
	Info(message string, userID *uint, action string, metadata map[string]interface{})
	Warning(message string, userID *uint, action string, metadata map[string]interface{})
	Error(message string, userID *uint, action string, metadata map[string]interface{})
}

func NewReservationService(db *gorm.DB, cfg *ConfigService, audit AuditLogger, pdf *PDFService, mail *EmailService) *ReservationService {
	return &ReservationService{db: db, cfg: cfg, audit: audit, pdf: pdf, mail: mail}
}

// StartOfToday es la medianoche local; las fechas de reserva y visita
// se validan contra ella.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// Create valida la solicitud, calcula el total y persiste la
// reservación confirmada. El PDF y el correo de confirmación son
// efectos secundarios best-effort: si fallan se registran en la
// bitácora y la reservación queda en pie (posiblemente sin pdf_url).
func (s *ReservationService) Create(userID uint, hotelID uint, checkin, checkout string, adults, children int, roomType string) (*models.Reservation, error) {
	checkinDate, err := ParseDate(checkin)
	if err != nil {
		return nil, err
	}
	checkoutDate, err := ParseDate(checkout)
	if err != nil {
		return nil, err
	}

	if checkinDate.Before(StartOfToday()) {
		return nil, errors.Validation("La fecha de check-in no puede ser anterior a hoy")
	}
	if !checkoutDate.After(checkinDate) {
		return nil, errors.Validation("La fecha de check-out debe ser posterior al check-in")
	}

	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Hotel no encontrado")
		}
		return nil, errors.Internal(err)
	}

	nights := Nights(checkinDate, checkoutDate)
	total := hotel.Price * float64(nights)

	number, err := GenerateNumber(constants.ReservationPrefix)
	if err != nil {
		return nil, errors.Internal(err)
	}

	reservation := models.Reservation{
		UserID:            userID,
		HotelID:           hotelID,
		Checkin:           checkinDate,
		Checkout:          checkoutDate,
		Adults:            adults,
		Children:          children,
		RoomType:          roomType,
		Total:             total,
		Status:            models.ReservationStatusConfirmed,
		ReservationNumber: number,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, errors.Internal(err)
	}
	reservation.Hotel = &hotel

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.Internal(err)
	}

	// Segunda escritura: la referencia al PDF se guarda después de
	// generarlo. Si falla, la reservación queda sin artefacto.
	if s.pdf != nil {
		pdfURL, pdfErr := s.pdf.ReservationConfirmation(&reservation, &hotel, &user, nights)
		if pdfErr != nil {
			s.audit.Error("Error generando PDF de confirmación", &userID, "create_reservation",
				map[string]interface{}{"error": pdfErr.Error(), "reservationId": reservation.ID})
		} else {
			reservation.PdfURL = pdfURL
			if err := s.db.Model(&reservation).Update("pdf_url", pdfURL).Error; err != nil {
				s.audit.Error("Error guardando la URL del PDF", &userID, "create_reservation",
					map[string]interface{}{"error": err.Error(), "reservationId": reservation.ID})
			}
		}
	}

	if s.mail != nil && s.cfg.EmailEnabled() {
		if mailErr := s.mail.ReservationConfirmation(&user, &hotel, &reservation, nights); mailErr != nil {
			s.audit.Error("Error enviando email de confirmación", &userID, "email_error",
				map[string]interface{}{"error": mailErr.Error(), "reservationId": reservation.ID})
		} else {
			s.audit.Info("Email de confirmación enviado", &userID, "email_sent",
				map[string]interface{}{"reservationId": reservation.ID})
		}
	}

	s.audit.Info("Reservación creada exitosamente", &userID, "create_reservation",
		map[string]interface{}{"reservationId": reservation.ID})

	return &reservation, nil
}

// Cancel aplica la política de cancelación: sólo reservaciones propias
// que no estén canceladas ni completadas, y con al menos la ventana
// configurada de horas antes del check-in.
func (s *ReservationService) Cancel(userID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("Hotel").
		Where("id = ? AND user_id = ?", reservationID, userID).
		First(&reservation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Reservación no encontrada")
		}
		return nil, errors.Internal(err)
	}

	switch reservation.Status {
	case models.ReservationStatusCancelled:
		return nil, errors.Conflict("La reservación ya está cancelada")
	case models.ReservationStatusCompleted:
		return nil, errors.Conflict("No se puede cancelar una reservación completada")
	}

	window := s.cfg.CancellationHours()
	hoursUntilCheckin := time.Until(reservation.Checkin).Hours()
	if hoursUntilCheckin < float64(window) {
		return nil, errors.Policy(fmt.Sprintf(
			"No se puede cancelar. Debe hacerlo con al menos %d horas de anticipación", window))
	}

	reservation.Status = models.ReservationStatusCancelled
	if err := s.db.Model(&reservation).Update("status", reservation.Status).Error; err != nil {
		return nil, errors.Internal(err)
	}

	if s.mail != nil && s.cfg.EmailEnabled() {
		var user models.User
		if err := s.db.First(&user, userID).Error; err == nil {
			if mailErr := s.mail.ReservationCancellation(&user, &reservation); mailErr != nil {
				s.audit.Error("Error enviando email de cancelación", &userID, "email_error",
					map[string]interface{}{"error": mailErr.Error(), "reservationId": reservation.ID})
			} else {
				s.audit.Info("Email de cancelación enviado", &userID, "email_sent",
					map[string]interface{}{"reservationId": reservation.ID})
			}
		}
	}

	s.audit.Info("Reservación cancelada", &userID, "cancel_reservation",
		map[string]interface{}{"reservationId": reservation.ID})

	return &reservation, nil
}

// CheckAvailability cuenta las reservaciones confirmadas o pendientes
// cuyo intervalo se solapa con el consultado (intervalos semiabiertos:
// existente.checkin < checkout Y existente.checkout > checkin) y resta
// del tope fijo de habitaciones por hotel.
func (s *ReservationService) CheckAvailability(hotelID uint, checkin, checkout string) (*AvailabilityResult, error) {
	checkinDate, err := ParseDate(checkin)
	if err != nil {
		return nil, err
	}
	checkoutDate, err := ParseDate(checkout)
	if err != nil {
		return nil, err
	}
	if !checkoutDate.After(checkinDate) {
		return nil, errors.Validation("La fecha de check-out debe ser posterior al check-in")
	}

	var booked int64
	err = s.db.Model(&models.Reservation{}).
		Where("hotel_id = ? AND status IN ? AND checkin < ? AND checkout > ?",
			hotelID,
			[]string{models.ReservationStatusConfirmed, models.ReservationStatusPending},
			checkoutDate, checkinDate).
		Count(&booked).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	available := constants.MaxRoomsPerHotel - int(booked)
	return &AvailabilityResult{
		Available:      available > 0,
		AvailableRooms: available,
		TotalRooms:     constants.MaxRoomsPerHotel,
		BookedRooms:    int(booked),
	}, nil
}

type AvailabilityResult struct {
	Available      bool
	AvailableRooms int
	TotalRooms     int
	BookedRooms    int
}
