package entities

import (
	"github.com/google/uuid"
)

// Recipe keeps the author's username and photo alongside the owner ID so feed
// pages can be served without a join. The photo is rewritten whenever the
// author changes it.
type Recipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Author         string    `gorm:"index;not null" json:"author"`
	AuthorPhotoURL string    `json:"author_photo_url,omitempty"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	PhotoURL       string    `json:"photo_url,omitempty"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Steps       []Step       `gorm:"foreignKey:RecipeID" json:"steps,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	Position int       `json:"position"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	Position    int       `json:"position"`
	Description string    `gorm:"type:text" json:"description"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}
