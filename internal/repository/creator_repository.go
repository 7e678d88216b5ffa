package repository

import (
	"database/sql"
	"strings"

	appErrors "github.com/brandhive/creator-journey-backend/internal/errors"
	"github.com/brandhive/creator-journey-backend/internal/model"
)

// CreatorRepositoryInterface defines the creator lookups the services need.
type CreatorRepositoryInterface interface {
	ResolveByName(name string) (*model.Creator, error)
	GetByID(id int) (*model.Creator, error)
	ListAll() ([]model.Creator, error)
}

type CreatorRepository struct {
	DB *sql.DB
}

// ResolveByName maps a display name to exactly one creator. Zero matches is
// ErrCreatorNotFound; more than one is ErrAmbiguousCreatorName, never a
// silent pick.
func (r *CreatorRepository) ResolveByName(name string) (*model.Creator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewCreatorNotFound(name)
	}

	query := `
        SELECT id, name, handle, phone
        FROM creators
        WHERE LOWER(name) = LOWER($1)
    `
	rows, err := r.DB.Query(query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []model.Creator{}
	for rows.Next() {
		var c model.Creator
		if err := rows.Scan(&c.ID, &c.Name, &c.Handle, &c.Phone); err != nil {
			return nil, err
		}
		matches = append(matches, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, appErrors.NewCreatorNotFound(name)
	case 1:
		return &matches[0], nil
	default:
		return nil, appErrors.NewAmbiguousCreatorName(name, len(matches))
	}
}

func (r *CreatorRepository) GetByID(id int) (*model.Creator, error) {
	query := `SELECT id, name, handle, phone FROM creators WHERE id = $1`
	row := r.DB.QueryRow(query, id)

	var c model.Creator
	if err := row.Scan(&c.ID, &c.Name, &c.Handle, &c.Phone); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

func (r *CreatorRepository) ListAll() ([]model.Creator, error) {
	query := `SELECT id, name, handle, phone FROM creators ORDER BY name ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	creators := []model.Creator{}
	for rows.Next() {
		var c model.Creator
		if err := rows.Scan(&c.ID, &c.Name, &c.Handle, &c.Phone); err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, nil
}

var _ CreatorRepositoryInterface = (*CreatorRepository)(nil)
