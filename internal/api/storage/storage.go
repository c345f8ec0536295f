package storage

import (
	"github.com/craftnet/craftnet-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

// Storage handles all database operations for the API service.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}
