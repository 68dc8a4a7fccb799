package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-map-places/models"
)

const usersEmailKey = "users_email_key"

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at, updated_at;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	listUsers = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    ORDER BY created_at, user_id;`

	updateUser = `UPDATE users
    SET name = $2, email = $3, password_hash = $4, updated_at = NOW()
    WHERE user_id = $1
    RETURNING user_id, name, email, password_hash, created_at, updated_at;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createPlace = `INSERT INTO places (name, type, address, phone, rating, latitude, longitude)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING place_id, name, type, address, phone, rating, latitude, longitude, created_at, updated_at;`

	findPlaceByID = `SELECT place_id, name, type, address, phone, rating, latitude, longitude, created_at, updated_at
    FROM places
    WHERE place_id = $1;`

	updatePlace = `UPDATE places
    SET name = $2, type = $3, address = $4, phone = $5, rating = $6, latitude = $7, longitude = $8, updated_at = NOW()
    WHERE place_id = $1
    RETURNING place_id, name, type, address, phone, rating, latitude, longitude, created_at, updated_at;`

	deletePlace = `DELETE FROM places WHERE place_id = $1;`

	addFavorite = `INSERT INTO favorites (user_id, place_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, place_id) DO NOTHING
    RETURNING favorite_id, user_id, place_id, created_at;`

	deleteFavorite = `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2;`
)

// placeColumns is the column order scanned by scanPlace.
var placeColumns = []string{
	"place_id", "name", "type", "address", "phone",
	"rating", "latitude", "longitude", "created_at", "updated_at",
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListPlacesQuery selects places matching filter. Type is an exact
// match; NamePrefix is a case-insensitive prefix match.
func buildListPlacesQuery(ctx context.Context, filter models.PlaceFilter) (string, []any, error) {
	q := psql.Select(placeColumns...).From("places")

	if filter.Type != "" {
		q = q.Where(sq.Eq{"type": filter.Type})
	}
	if filter.NamePrefix != "" {
		q = q.Where(sq.ILike{"name": likeEscaper.Replace(filter.NamePrefix) + "%"})
	}

	query, args, err := q.OrderBy("name", "place_id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListFavoritePlacesQuery selects the places favorited by userID in the
// order they were added.
func buildListFavoritePlacesQuery(ctx context.Context, userID string) (string, []any, error) {
	cols := make([]string, len(placeColumns))
	for i, c := range placeColumns {
		cols[i] = "p." + c
	}

	query, args, err := psql.Select(cols...).
		From("places p").
		Join("favorites f ON f.place_id = p.place_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at", "p.place_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
