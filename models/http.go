package models

// LoginRequest carries the credentials submitted to POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// UpdateResult tells apart the two successful outcomes of a full-replace update.
type UpdateResult int

const (
	// UpdateResultUpdated means the record matched and at least one field changed.
	UpdateResultUpdated UpdateResult = iota + 1

	// UpdateResultUnchanged means the record matched but the submitted fields
	// equal the stored ones, so nothing was written.
	UpdateResultUnchanged
)

// String returns the value used in the X-Update-Result response header.
func (r UpdateResult) String() string {
	switch r {
	case UpdateResultUpdated:
		return "updated"
	case UpdateResultUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// FavoriteResult tells apart a freshly created favorite from a repeated one.
type FavoriteResult int

const (
	FavoriteCreated FavoriteResult = iota + 1
	FavoriteAlreadyExists
)
