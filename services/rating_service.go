package services

import (
	"math"

	"vbdhotel/errors"
	"vbdhotel/models"

	"gorm.io/gorm"
)

// RoundRating redondea un promedio a un decimal.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// RatingService maneja las reseñas de hoteles, destinos y experiencias
// y mantiene materializado el promedio en la entidad calificada.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

func tableFor(targetType string) string {
	switch targetType {
	case models.ReviewTargetHotel:
		return "hotels"
	case models.ReviewTargetDestination:
		return "destinations"
	case models.ReviewTargetExperience:
		return "experiences"
	}
	return ""
}

// AddReview inserta la reseña y recalcula el promedio dentro de una
// transacción. Un usuario sólo puede reseñar cada entidad una vez.
func (s *RatingService) AddReview(targetType string, targetID, userID uint, userName string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.Validation("La calificación debe estar entre 1 y 5")
	}
	table := tableFor(targetType)
	if table == "" {
		return nil, errors.Validation("Tipo de entidad inválido")
	}

	review := models.Review{
		TargetType: targetType,
		TargetID:   targetID,
		UserID:     userID,
		UserName:   userName,
		Rating:     rating,
		Comment:    comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		err := tx.Model(&models.Review{}).
			Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
			Count(&existing).Error
		if err != nil {
			return errors.Internal(err)
		}
		if existing > 0 {
			return errors.Conflict("Ya has dejado una reseña")
		}

		if err := tx.Create(&review).Error; err != nil {
			return errors.Internal(err)
		}

		var mean float64
		err = tx.Model(&models.Review{}).
			Where("target_type = ? AND target_id = ?", targetType, targetID).
			Select("AVG(rating)").Scan(&mean).Error
		if err != nil {
			return errors.Internal(err)
		}

		err = tx.Table(table).Where("id = ?", targetID).
			Update("rating", RoundRating(mean)).Error
		if err != nil {
			return errors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviews devuelve las reseñas de una entidad, recientes primero.
func (s *RatingService) ListReviews(targetType string, targetID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return reviews, nil
}
