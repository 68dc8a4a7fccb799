package models

import "time"

// Favorite is a join record associating a user with a place.
// The pair (UserID, PlaceID) is unique.
type Favorite struct {
	FavoriteID string    `json:"id,omitempty"`
	UserID     string    `json:"usuario_id" validate:"required,uuid"`
	PlaceID    string    `json:"local_id" validate:"required,uuid"`
	CreatedAt  time.Time `json:"criado_em"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
