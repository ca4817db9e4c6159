//go:build integration || !unit

package services

import (
	"fmt"
	"testing"
	"time"

	"vbdhotel/errors"
	"vbdhotel/models"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noopAudit struct{}

func (noopAudit) Info(string, *uint, string, map[string]interface{})    {}
func (noopAudit) Warning(string, *uint, string, map[string]interface{}) {}
func (noopAudit) Error(string, *uint, string, map[string]interface{})   {}

type auditEntry struct {
	Level   string
	Message string
	Action  string
}

type recordingAudit struct {
	entries []auditEntry
}

func (r *recordingAudit) Info(message string, _ *uint, action string, _ map[string]interface{}) {
	r.entries = append(r.entries, auditEntry{"info", message, action})
}

func (r *recordingAudit) Warning(message string, _ *uint, action string, _ map[string]interface{}) {
	r.entries = append(r.entries, auditEntry{"warning", message, action})
}

func (r *recordingAudit) Error(message string, _ *uint, action string, _ map[string]interface{}) {
	r.entries = append(r.entries, auditEntry{"error", message, action})
}

func (r *recordingAudit) lastWarning() (auditEntry, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Level == "warning" {
			return r.entries[i], true
		}
	}
	return auditEntry{}, false
}

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vbdhotel_test",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run postgres: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("host=127.0.0.1 port=%s user=postgres password=secret dbname=vbdhotel_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if e != nil {
			return e
		}
		sqlDB, e := db.DB()
		if e != nil {
			return e
		}
		return sqlDB.Ping()
	}); err != nil {
		t.Fatalf("connect postgres: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Review{},
		&models.Reservation{},
		&models.Destination{},
		&models.Experience{},
		&models.SiteConfig{},
		&models.Log{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestReservationEngine_Postgres(t *testing.T) {
	db := setupPostgres(t)

	cfg := NewConfigService(db, nil)
	if err := cfg.Seed(); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	engine := NewReservationService(db, cfg, noopAudit{}, nil, nil)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	hotel := models.Hotel{Name: "Hotel Prueba", Location: "Centro", Price: 1000, City: "Reynosa"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}

	t.Run("crea con total por noche", func(t *testing.T) {
		reservation, err := engine.Create(user.ID, hotel.ID, futureDate(10), futureDate(14), 2, 1, "doble")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if reservation.Total != 4000 {
			t.Errorf("Total = %v, quería 4000 (4 noches x 1000)", reservation.Total)
		}
		if reservation.Status != models.ReservationStatusConfirmed {
			t.Errorf("Status = %q", reservation.Status)
		}
		if reservation.ReservationNumber == "" {
			t.Error("falta el número de reservación")
		}
	})

	t.Run("rechaza checkin en el pasado", func(t *testing.T) {
		_, err := engine.Create(user.ID, hotel.ID, futureDate(-1), futureDate(2), 1, 0, "sencilla")
		if !errors.IsKind(err, errors.KindValidation) {
			t.Errorf("quería error de validación, fue %v", err)
		}
	})

	t.Run("rechaza checkout no posterior", func(t *testing.T) {
		_, err := engine.Create(user.ID, hotel.ID, futureDate(5), futureDate(5), 1, 0, "sencilla")
		if !errors.IsKind(err, errors.KindValidation) {
			t.Errorf("quería error de validación, fue %v", err)
		}
	})

	t.Run("rechaza hotel inexistente", func(t *testing.T) {
		_, err := engine.Create(user.ID, 99999, futureDate(5), futureDate(7), 1, 0, "sencilla")
		if !errors.IsKind(err, errors.KindNotFound) {
			t.Errorf("quería not found, fue %v", err)
		}
	})
}

func TestAvailability_Postgres(t *testing.T) {
	db := setupPostgres(t)
	cfg := NewConfigService(db, nil)
	engine := NewReservationService(db, cfg, noopAudit{}, nil, nil)

	user := models.User{Name: "Eva", Email: "eva@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	hotel := models.Hotel{Name: "Hotel Cupo", Location: "Playa", Price: 800}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}

	mkReservation := func(checkin, checkout, status string) {
		t.Helper()
		ci, _ := ParseDate(checkin)
		co, _ := ParseDate(checkout)
		r := models.Reservation{
			UserID: user.ID, HotelID: hotel.ID,
			Checkin: ci, Checkout: co,
			Adults: 1, RoomType: "sencilla", Total: 800,
			Status: status,
		}
		r.ReservationNumber, _ = GenerateNumber("VBD")
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("create reservation: %v", err)
		}
	}

	// Ocupación base: [mar 1, mar 5) confirmada, más una cancelada que
	// no debe contar.
	mkReservation("2031-03-01", "2031-03-05", models.ReservationStatusConfirmed)
	mkReservation("2031-03-01", "2031-03-05", models.ReservationStatusCancelled)

	cases := []struct {
		name       string
		checkin    string
		checkout   string
		wantBooked int
	}{
		{"solapa al final", "2031-03-04", "2031-03-06", 1},
		{"solapa al inicio", "2031-02-27", "2031-03-02", 1},
		{"contenida", "2031-03-02", "2031-03-03", 1},
		{"checkout el día del checkin no solapa", "2031-02-25", "2031-03-01", 0},
		{"checkin el día del checkout no solapa", "2031-03-05", "2031-03-08", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.CheckAvailability(hotel.ID, tc.checkin, tc.checkout)
			if err != nil {
				t.Fatalf("CheckAvailability: %v", err)
			}
			if result.BookedRooms != tc.wantBooked {
				t.Errorf("BookedRooms = %d, quería %d", result.BookedRooms, tc.wantBooked)
			}
			if result.TotalRooms != 20 {
				t.Errorf("TotalRooms = %d, quería 20", result.TotalRooms)
			}
			if result.AvailableRooms != 20-tc.wantBooked {
				t.Errorf("AvailableRooms = %d", result.AvailableRooms)
			}
		})
	}
}

func TestCancel_Postgres(t *testing.T) {
	db := setupPostgres(t)
	cfg := NewConfigService(db, nil)
	if err := cfg.Seed(); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	engine := NewReservationService(db, cfg, noopAudit{}, nil, nil)

	user := models.User{Name: "Luis", Email: "luis@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	hotel := models.Hotel{Name: "Hotel Cancel", Location: "Centro", Price: 500}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}

	mkReservation := func(checkin time.Time, status string) models.Reservation {
		t.Helper()
		r := models.Reservation{
			UserID: user.ID, HotelID: hotel.ID,
			Checkin: checkin, Checkout: checkin.AddDate(0, 0, 2),
			Adults: 1, RoomType: "sencilla", Total: 1000,
			Status: status,
		}
		r.ReservationNumber, _ = GenerateNumber("VBD")
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("create reservation: %v", err)
		}
		return r
	}

	t.Run("cancela dentro de la ventana", func(t *testing.T) {
		r := mkReservation(time.Now().Add(100*time.Hour), models.ReservationStatusConfirmed)
		cancelled, err := engine.Cancel(user.ID, r.ID)
		if err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if cancelled.Status != models.ReservationStatusCancelled {
			t.Errorf("Status = %q", cancelled.Status)
		}
	})

	t.Run("rechaza fuera de la ventana", func(t *testing.T) {
		r := mkReservation(time.Now().Add(10*time.Hour), models.ReservationStatusConfirmed)
		_, err := engine.Cancel(user.ID, r.ID)
		if !errors.IsKind(err, errors.KindPolicy) {
			t.Errorf("quería error de política, fue %v", err)
		}
	})

	t.Run("rechaza doble cancelación", func(t *testing.T) {
		r := mkReservation(time.Now().Add(100*time.Hour), models.ReservationStatusCancelled)
		_, err := engine.Cancel(user.ID, r.ID)
		if !errors.IsKind(err, errors.KindConflict) {
			t.Errorf("quería conflicto, fue %v", err)
		}
	})

	t.Run("rechaza completada", func(t *testing.T) {
		r := mkReservation(time.Now().Add(100*time.Hour), models.ReservationStatusCompleted)
		_, err := engine.Cancel(user.ID, r.ID)
		if !errors.IsKind(err, errors.KindConflict) {
			t.Errorf("quería conflicto, fue %v", err)
		}
	})

	t.Run("reservación ajena es not found", func(t *testing.T) {
		r := mkReservation(time.Now().Add(100*time.Hour), models.ReservationStatusConfirmed)
		_, err := engine.Cancel(user.ID+1, r.ID)
		if !errors.IsKind(err, errors.KindNotFound) {
			t.Errorf("quería not found, fue %v", err)
		}
	})
}

func TestRatingAggregator_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ratings := NewRatingService(db)

	hotel := models.Hotel{Name: "Hotel Reseñas", Location: "Centro", Price: 700}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}

	if _, err := ratings.AddReview(models.ReviewTargetHotel, hotel.ID, 1, "Ana", 4, "bien"); err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if _, err := ratings.AddReview(models.ReviewTargetHotel, hotel.ID, 2, "Luis", 5, "excelente"); err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	var updated models.Hotel
	if err := db.First(&updated, hotel.ID).Error; err != nil {
		t.Fatalf("reload hotel: %v", err)
	}
	if updated.Rating != 4.5 {
		t.Errorf("Rating = %v, quería 4.5", updated.Rating)
	}

	t.Run("rechaza segunda reseña del mismo usuario", func(t *testing.T) {
		_, err := ratings.AddReview(models.ReviewTargetHotel, hotel.ID, 1, "Ana", 3, "cambié de opinión")
		if !errors.IsKind(err, errors.KindConflict) {
			t.Errorf("quería conflicto, fue %v", err)
		}
	})

	t.Run("rechaza calificación fuera de rango", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := ratings.AddReview(models.ReviewTargetHotel, hotel.ID, 3, "Eva", rating, "")
			if !errors.IsKind(err, errors.KindValidation) {
				t.Errorf("rating %d: quería validación, fue %v", rating, err)
			}
		}
	})

	t.Run("materializa el promedio de un destino", func(t *testing.T) {
		destination := models.Destination{Name: "Tamasopo", Price: 350}
		if err := db.Create(&destination).Error; err != nil {
			t.Fatalf("create destination: %v", err)
		}
		if _, err := ratings.AddReview(models.ReviewTargetDestination, destination.ID, 1, "Ana", 3, ""); err != nil {
			t.Fatalf("AddReview: %v", err)
		}
		if _, err := ratings.AddReview(models.ReviewTargetDestination, destination.ID, 2, "Luis", 4, ""); err != nil {
			t.Fatalf("AddReview: %v", err)
		}

		var reloaded models.Destination
		if err := db.First(&reloaded, destination.ID).Error; err != nil {
			t.Fatalf("reload destination: %v", err)
		}
		if reloaded.Rating != 3.5 {
			t.Errorf("Rating = %v, quería 3.5", reloaded.Rating)
		}
	})

	t.Run("lista recientes primero", func(t *testing.T) {
		reviews, err := ratings.ListReviews(models.ReviewTargetHotel, hotel.ID)
		if err != nil {
			t.Fatalf("ListReviews: %v", err)
		}
		if len(reviews) != 2 {
			t.Fatalf("len = %d, quería 2", len(reviews))
		}
	})
}

func TestAuthService_Postgres(t *testing.T) {
	db := setupPostgres(t)
	recorder := &recordingAudit{}
	auth := NewAuthService(db, recorder)

	user, err := auth.Register("Ana", "Ana@Example.com", "secreto123", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("el email debería normalizarse a minúsculas, fue %q", user.Email)
	}
	if user.Password == "secreto123" {
		t.Error("el password no debería guardarse en claro")
	}

	t.Run("rechaza email duplicado y deja warning en bitácora", func(t *testing.T) {
		_, err := auth.Register("Otra", "ana@example.com", "otropass", "", "")
		if !errors.IsKind(err, errors.KindConflict) {
			t.Errorf("quería conflicto, fue %v", err)
		}
		warning, ok := recorder.lastWarning()
		if !ok {
			t.Fatal("el registro duplicado debería dejar un warning")
		}
		if warning.Action != "register_attempt" {
			t.Errorf("action = %q, quería register_attempt", warning.Action)
		}
	})

	t.Run("login correcto", func(t *testing.T) {
		logged, err := auth.Login("ana@example.com", "secreto123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if logged.ID != user.ID {
			t.Errorf("ID = %d", logged.ID)
		}
	})

	t.Run("password incorrecto y email desconocido dan el mismo mensaje", func(t *testing.T) {
		_, badPass := auth.Login("ana@example.com", "malo")
		_, badMail := auth.Login("nadie@example.com", "secreto123")
		if badPass == nil || badMail == nil {
			t.Fatal("ambos logins deberían fallar")
		}
		if errors.Message(badPass) != errors.Message(badMail) {
			t.Errorf("mensajes distintos: %q vs %q", errors.Message(badPass), errors.Message(badMail))
		}
	})
}
