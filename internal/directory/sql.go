package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/dbx"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

const accountColumns = `id, email, password, name, role, phone, address, farm_size, preferred_crops, certifications`

// SQLRepository stores accounts in the accounts table created by the
// embedded migrations.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, acc *models.Account) error {
	crops, certs, err := encodeSequences(acc.Profile)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		taken, err := emailTaken(ctx, tx, acc.Email)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrEmailAlreadyRegistered
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (`+accountColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			acc.ID, acc.Email, acc.Password, acc.Name, string(acc.Role),
			acc.Profile.Phone, acc.Profile.Address, acc.Profile.FarmSize, crops, certs)
		if err != nil {
			return fmt.Errorf("error inserting account: %w", err)
		}
		return nil
	})
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

// Update overwrites every column of the account with the same ID.
func (r *SQLRepository) Update(ctx context.Context, acc *models.Account) error {
	crops, certs, err := encodeSequences(acc.Profile)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var current string
		err := tx.QueryRowContext(ctx, `SELECT email FROM accounts WHERE id = ?`, acc.ID).Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		if current != acc.Email {
			taken, err := emailTaken(ctx, tx, acc.Email)
			if err != nil {
				return err
			}
			if taken {
				return common.ErrEmailAlreadyRegistered
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE accounts
			 SET email = ?, password = ?, name = ?, role = ?, phone = ?, address = ?,
			     farm_size = ?, preferred_crops = ?, certifications = ?
			 WHERE id = ?`,
			acc.Email, acc.Password, acc.Name, string(acc.Role), acc.Profile.Phone, acc.Profile.Address,
			acc.Profile.FarmSize, crops, certs, acc.ID)
		if err != nil {
			return fmt.Errorf("error updating account: %w", err)
		}
		return nil
	})
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return out, nil
}

func emailTaken(ctx context.Context, tx dbx.DBTX, email string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE email = ?`, email).Scan(&n); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		acc         models.Account
		role        string
		crops, cert string
	)
	err := s.Scan(&acc.ID, &acc.Email, &acc.Password, &acc.Name, &role,
		&acc.Profile.Phone, &acc.Profile.Address, &acc.Profile.FarmSize, &crops, &cert)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	acc.Role = models.Role(role)

	if err := json.Unmarshal([]byte(crops), &acc.Profile.PreferredCrops); err != nil {
		return nil, fmt.Errorf("error decoding preferred crops: %w", err)
	}
	if err := json.Unmarshal([]byte(cert), &acc.Profile.Certifications); err != nil {
		return nil, fmt.Errorf("error decoding certifications: %w", err)
	}
	acc.Profile = acc.Profile.Clone()
	return &acc, nil
}

func encodeSequences(p models.Profile) (string, string, error) {
	p = p.Clone()
	crops, err := json.Marshal(p.PreferredCrops)
	if err != nil {
		return "", "", fmt.Errorf("error encoding preferred crops: %w", err)
	}
	certs, err := json.Marshal(p.Certifications)
	if err != nil {
		return "", "", fmt.Errorf("error encoding certifications: %w", err)
	}
	return string(crops), string(certs), nil
}
