package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User représente un compte Train.ai dans la base de données
type User struct {
	gorm.Model
	Email       string         `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	FullName    string         `json:"full_name"`
	PremiumUser bool           `json:"premium_user"`
	Limit       int            `json:"limit" gorm:"default:5"`
	LikedModels pq.StringArray `json:"liked_models" gorm:"type:text[]"`
}

// HasLiked indique si le modèle est présent dans l'ensemble liked_models
func (u *User) HasLiked(modelID string) bool {
	for _, id := range u.LikedModels {
		if id == modelID {
			return true
		}
	}
	return false
}

// AddLikedModel ajoute l'identifiant sans créer de doublon
func (u *User) AddLikedModel(modelID string) {
	if u.HasLiked(modelID) {
		return
	}
	u.LikedModels = append(u.LikedModels, modelID)
}

// RemoveLikedModel retire l'identifiant s'il est présent
func (u *User) RemoveLikedModel(modelID string) {
	kept := make(pq.StringArray, 0, len(u.LikedModels))
	for _, id := range u.LikedModels {
		if id != modelID {
			kept = append(kept, id)
		}
	}
	u.LikedModels = kept
}
