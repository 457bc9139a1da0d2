package userrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bolao/internal/domain"
	"bolao/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM usuarios WHERE login = $1", login).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, login, nome, telefone, chave_pix
		FROM usuarios
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Login, &user.Nome, &user.Telefone, &user.ChavePix)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE usuarios
		SET nome = $1, telefone = $2, chave_pix = $3
		WHERE id = $4
	`
	if _, err := repo.db.Exec(ctx, query, user.Nome, user.Telefone, user.ChavePix, user.ID); err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO usuarios (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
