// Package localdir is the legacy directory variant: the same user CRUD
// contract as the REST backend, persisted in the local sqlite database.
// It backs the admin panel when no backend URL is configured.
package localdir

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"fisiovida/infrastructure/directory"
	"fisiovida/infrastructure/sqlite"
	"fisiovida/models"
)

// Store implements directory.Directory over sqlite.
type Store struct {
	db *sqlite.DB
}

func NewStore(db *sqlite.DB) *Store {
	return &Store{db: db}
}

func toRecord(u models.DirectoryUser) directory.UserRecord {
	return directory.UserRecord{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone}
}

func (s *Store) Create(ctx context.Context, in directory.UserInput) (directory.UserRecord, error) {
	row := &models.DirectoryUser{
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(row).Exec(ctx)
		return err
	})
	if err != nil {
		return directory.UserRecord{}, err
	}
	return toRecord(*row), nil
}

func (s *Store) List(ctx context.Context, pageIndex, pageSize int) (directory.Page, error) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = directory.PageSize
	}

	var rows []models.DirectoryUser
	var total int
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().Model((*models.DirectoryUser)(nil)).Count(ctx)
		if err != nil {
			return err
		}
		total = count
		return tx.NewSelect().
			Model(&rows).
			Order("id ASC").
			Limit(pageSize).
			Offset(pageIndex * pageSize).
			Scan(ctx)
	})
	if err != nil {
		return directory.Page{}, err
	}

	items := make([]directory.UserRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, toRecord(row))
	}
	totalPages := directory.TotalPages(int64(total), pageSize)
	return directory.Page{
		Items:      items,
		TotalItems: int64(total),
		TotalPages: totalPages,
		PageSize:   pageSize,
		PageIndex:  pageIndex,
		First:      pageIndex == 0,
		Last:       totalPages == 0 || pageIndex >= totalPages-1,
		Empty:      len(items) == 0,
	}, nil
}

func (s *Store) Get(ctx context.Context, id int64) (directory.UserRecord, error) {
	var row models.DirectoryUser
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&row).Where("du.id = ?", id).Limit(1).Scan(ctx)
	})
	if err != nil {
		return directory.UserRecord{}, err
	}
	return toRecord(row), nil
}

func (s *Store) Update(ctx context.Context, id int64, in directory.UserInput) (directory.UserRecord, error) {
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.DirectoryUser)(nil)).
			Set("full_name = ?", strings.TrimSpace(in.FullName)).
			Set("email = ?", strings.TrimSpace(in.Email)).
			Set("phone = ?", strings.TrimSpace(in.Phone)).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return directory.UserRecord{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.DirectoryUser)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}
