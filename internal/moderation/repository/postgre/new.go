package postgre

import (
	"database/sql"

	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/log"
)

type implFlagRepository struct {
	l  log.Logger
	db *sql.DB
}

// NewFlagRepository - Factory
func NewFlagRepository(l log.Logger, db *sql.DB) repository.FlagRepository {
	return &implFlagRepository{l: l, db: db}
}

type implSignalRepository struct {
	l  log.Logger
	db *sql.DB
}

// NewSignalRepository - Factory
func NewSignalRepository(l log.Logger, db *sql.DB) repository.SignalRepository {
	return &implSignalRepository{l: l, db: db}
}
