package models

import "time"

// Place is a point of interest shown on the recommendations map.
//
// Rating is optional; Latitude and Longitude are pointers so that an absent
// coordinate can be told apart from the equator or the prime meridian.
type Place struct {
	PlaceID   string   `json:"id,omitempty"`
	Name      string   `json:"nome" validate:"required"`
	Type      string   `json:"tipo" validate:"required"`
	Address   string   `json:"endereco" validate:"required"`
	Phone     string   `json:"telefone"`
	Rating    *float64 `json:"avaliacao,omitempty" validate:"omitempty,gte=0,lte=5"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`

	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// TableName returns the name of the database table
// associated with the Place model.
func (p Place) TableName() string {
	return "places"
}

// SameContent reports whether p and other carry the same user-editable
// fields. Identifiers and timestamps are ignored.
func (p Place) SameContent(other Place) bool {
	return p.Name == other.Name &&
		p.Type == other.Type &&
		p.Address == other.Address &&
		p.Phone == other.Phone &&
		equalFloatPtr(p.Rating, other.Rating) &&
		equalFloatPtr(p.Latitude, other.Latitude) &&
		equalFloatPtr(p.Longitude, other.Longitude)
}

// Marker converts the place into the named coordinate consumed by the
// map renderer. Places without coordinates yield ok == false.
func (p Place) Marker() (Marker, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return Marker{}, false
	}

	return Marker{Name: p.Name, Lat: *p.Latitude, Lon: *p.Longitude}, true
}

// PlaceFilter narrows place listings. Empty fields are not applied.
type PlaceFilter struct {
	// Type matches places.type exactly.
	Type string

	// NamePrefix matches the beginning of places.name, case-insensitively.
	NamePrefix string
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
