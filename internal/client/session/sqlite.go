package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teamconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/teamconsole/internal/common"
	"github.com/dmitrijs2005/teamconsole/internal/dbx"
)

// SQLiteLifetime keeps the session in the local state file so it survives
// restarts.
type SQLiteLifetime struct {
	db *sql.DB
}

func NewSQLiteLifetime(db *sql.DB) *SQLiteLifetime {
	return &SQLiteLifetime{db: db}
}

func (s *SQLiteLifetime) Name() string { return "durable" }

func (s *SQLiteLifetime) Load(ctx context.Context) (string, []byte, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.TokenKey)
	if err != nil {
		return "", nil, err
	}
	user, err := repo.Get(ctx, common.UserKey)
	if err != nil {
		return "", nil, err
	}
	return string(token), user, nil
}

func (s *SQLiteLifetime) Save(ctx context.Context, token string, user []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserKey, user)
	})
}

func (s *SQLiteLifetime) Erase(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.TokenKey, common.UserKey)
}
