package constants

// Capacidad fija por hotel para el cálculo de disponibilidad.
const MaxRoomsPerHotel = 20

const (
	ReservationPrefix = "VBD"
	TransactionPrefix = "TXN"
)

// Valores por defecto cuando la configuración no existe en la base.
const (
	DefaultCancellationHours  = 24
	DefaultMaxReservationDays = 365
	DefaultSiteName           = "VBDHOTEL"
)

const LogRetentionDays = 30

const MaxAvatarSize = 5 * 1024 * 1024
