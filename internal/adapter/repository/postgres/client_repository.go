package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/devmarta/railbook/internal/core/domain"
)

const uniqueViolation = "23505"

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) GetByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `
	SELECT client_id, username, password_hash
	FROM clients
	WHERE client_id = $1
	`

	return r.scanClient(r.db.QueryRowContext(ctx, query, clientID))
}

func (r *ClientRepository) GetByUsername(ctx context.Context, username string) (*domain.Client, error) {
	query := `
	SELECT client_id, username, password_hash
	FROM clients
	WHERE username = $1
	`

	return r.scanClient(r.db.QueryRowContext(ctx, query, username))
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
	INSERT INTO clients (username, password_hash)
	VALUES ($1, $2)
	RETURNING client_id
	`

	err := r.db.QueryRowContext(ctx, query, client.Username, client.PasswordHash).Scan(&client.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrUsernameTaken
		}

		return err
	}

	return nil
}

func (r *ClientRepository) scanClient(row *sql.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(&client.ID, &client.Username, &client.PasswordHash)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return &client, nil
}
