package store

import (
	"database/sql"

	"github.com/MKhiriev/go-map-places/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanPlace(row rowScanner) (models.Place, error) {
	var (
		p        models.Place
		rating   sql.NullFloat64
		lat, lon float64
	)

	err := row.Scan(&p.PlaceID, &p.Name, &p.Type, &p.Address, &p.Phone, &rating, &lat, &lon, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Place{}, err
	}

	if rating.Valid {
		p.Rating = &rating.Float64
	}
	p.Latitude = &lat
	p.Longitude = &lon

	return p, nil
}

// nullableFloat converts an optional value into a driver argument.
func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
