package services

import (
	"log"

	"vbdhotel/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SeedSampleData carga el catálogo inicial de hoteles, destinos y
// experiencias cuando las tablas están vacías. Sólo corre en el primer
// arranque; nunca toca datos existentes.
func SeedSampleData(db *gorm.DB) error {
	if err := seedHotels(db); err != nil {
		return err
	}
	if err := seedDestinations(db); err != nil {
		return err
	}
	return seedExperiences(db)
}

func seedHotels(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hotels := []models.Hotel{
		{
			Name:        "Hotel Plaza Reynosa",
			Location:    "Centro, Reynosa",
			Description: "Hotel de negocios en el corazón de la ciudad, a unos pasos de la plaza principal.",
			Price:       1250,
			Amenities:   pq.StringArray{"wifi", "alberca", "estacionamiento", "restaurante"},
			Images:      pq.StringArray{"https://images.vbdhotel.com/hotels/plaza-reynosa-1.jpg"},
			Lat:         26.0806,
			Lng:         -98.2880,
			City:        "Reynosa",
			Address:     "Calle Hidalgo 550, Zona Centro",
			Phone:       "+52 899 922 0150",
			Email:       "contacto@plazareynosa.mx",
		},
		{
			Name:        "Fiesta Inn Monterrey Valle",
			Location:    "San Pedro Garza García, Monterrey",
			Description: "Habitaciones ejecutivas con vista a la Sierra Madre y centro de negocios.",
			Price:       2100,
			Amenities:   pq.StringArray{"wifi", "gimnasio", "estacionamiento", "centro de negocios"},
			Images:      pq.StringArray{"https://images.vbdhotel.com/hotels/fiesta-valle-1.jpg"},
			Lat:         25.6506,
			Lng:         -100.3689,
			City:        "Monterrey",
			Address:     "Av. Lázaro Cárdenas 327, Valle Oriente",
			Phone:       "+52 81 8155 0900",
			Email:       "reservas@fiestavalle.mx",
		},
		{
			Name:        "Gran Hotel Playa Miramar",
			Location:    "Playa Miramar, Ciudad Madero",
			Description: "Frente al mar, con alberca infinita y acceso directo a la playa.",
			Price:       1850,
			Amenities:   pq.StringArray{"wifi", "alberca", "playa", "bar", "restaurante"},
			Images:      pq.StringArray{"https://images.vbdhotel.com/hotels/miramar-1.jpg"},
			Lat:         22.2840,
			Lng:         -97.7810,
			City:        "Ciudad Madero",
			Address:     "Blvd. Costero 2015, Miramar",
			Phone:       "+52 833 224 4500",
			Email:       "hola@granmiramar.mx",
		},
	}
	if err := db.Create(&hotels).Error; err != nil {
		return err
	}
	log.Printf("Catálogo inicial: %d hoteles creados", len(hotels))
	return nil
}

func seedDestinations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Destination{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	destinations := []models.Destination{
		{
			Name:            "Cascadas de Tamasopo",
			Description:     "Cascadas de agua turquesa en plena Huasteca Potosina.",
			State:           "San Luis Potosí",
			City:            "Tamasopo",
			Images:          pq.StringArray{"https://images.vbdhotel.com/destinations/tamasopo-1.jpg"},
			Lat:             21.9256,
			Lng:             -99.3931,
			Attractions:     pq.StringArray{"cascadas", "pozas naturales", "puente de dios"},
			BestTimeToVisit: "Noviembre a abril",
			Timezone:        "America/Mexico_City",
			PopularWith:     pq.StringArray{"familias", "aventureros"},
			Tags:            pq.StringArray{"naturaleza", "agua"},
			Price:           350,
		},
		{
			Name:            "Centro Histórico de Querétaro",
			Description:     "Callejones coloniales, andadores y el acueducto más famoso del país.",
			State:           "Querétaro",
			City:            "Querétaro",
			Images:          pq.StringArray{"https://images.vbdhotel.com/destinations/queretaro-1.jpg"},
			Lat:             20.5888,
			Lng:             -100.3899,
			Attractions:     pq.StringArray{"acueducto", "plaza de armas", "museos"},
			BestTimeToVisit: "Todo el año",
			Timezone:        "America/Mexico_City",
			PopularWith:     pq.StringArray{"parejas", "familias"},
			Tags:            pq.StringArray{"cultura", "historia"},
			Price:           280,
		},
	}
	if err := db.Create(&destinations).Error; err != nil {
		return err
	}
	log.Printf("Catálogo inicial: %d destinos creados", len(destinations))
	return nil
}

func seedExperiences(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Experience{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	experiences := []models.Experience{
		{
			Title:           "Tour gastronómico por el centro",
			Description:     "Recorrido guiado por los puestos y fondas más tradicionales.",
			Category:        "gastronomía",
			Location:        "Monterrey",
			Duration:        "3 horas",
			Price:           450,
			Includes:        pq.StringArray{"guía", "degustaciones", "bebidas"},
			Difficulty:      "easy",
			MaxParticipants: 12,
			MinAge:          8,
			IsActive:        true,
		},
		{
			Title:           "Rappel en la Huasteca",
			Description:     "Descenso de 25 metros junto a la cascada, con equipo certificado.",
			Category:        "aventura",
			Location:        "Tamasopo",
			Duration:        "5 horas",
			Price:           890,
			Includes:        pq.StringArray{"equipo", "instructor", "seguro"},
			Requirements:    pq.StringArray{"buena condición física", "saber nadar"},
			Difficulty:      "hard",
			MaxParticipants: 8,
			MinAge:          16,
			IsActive:        true,
		},
	}
	if err := db.Create(&experiences).Error; err != nil {
		return err
	}
	log.Printf("Catálogo inicial: %d experiencias creadas", len(experiences))
	return nil
}
