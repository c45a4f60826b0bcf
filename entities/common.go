package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// newID fills id when the caller left it empty.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (r *Recipe) BeforeCreate(_ *gorm.DB) error {
	newID(&r.ID)
	return nil
}

func (i *Ingredient) BeforeCreate(_ *gorm.DB) error {
	newID(&i.ID)
	return nil
}

func (s *Step) BeforeCreate(_ *gorm.DB) error {
	newID(&s.ID)
	return nil
}

func (f *Favourite) BeforeCreate(_ *gorm.DB) error {
	newID(&f.ID)
	return nil
}
