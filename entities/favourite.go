package entities

import (
	"github.com/google/uuid"
	"time"
)

// Favourite marks RecipeID as a favourite of the user named Username. At most
// one mark exists per (Username, RecipeID).
type Favourite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"uniqueIndex:idx_favourites_viewer_recipe;not null" json:"username"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favourites_viewer_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;index" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
