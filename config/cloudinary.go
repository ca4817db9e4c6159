package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		GetEnv("CLOUDINARY_CLOUD_NAME"),
		GetEnv("CLOUDINARY_API_KEY"),
		GetEnv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("No se pudo inicializar Cloudinary: %v", err)
	}
}
