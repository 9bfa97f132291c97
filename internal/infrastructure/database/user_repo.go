package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "user_id, username, email, hashed_password, role, created_at"

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	var createdAt pgtype.Timestamptz
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.Role, &createdAt)
	if err != nil {
		return entities.User{}, err
	}
	u.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, hashed_password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at`,
		user.Username, user.Email, user.HashedPassword, user.Role,
	).Scan(&user.ID, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == "users_username_key" {
				return domain.ErrUsernameTaken
			}
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	user.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, "user_id = $1", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*entities.User, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+cond, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
