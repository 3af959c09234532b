package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]. The
// credential column is never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the user with the given username.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - driver errors → *[PersistenceError].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, "find user", func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		scanErr := row.Scan(&user.UserID, &user.Username, &user.Credential, &user.Role)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return errDomain(ErrUserNotFound)
		}
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

// AddUser inserts a user and returns its id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameExists].
func (r *userRepository) AddUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildAddUserQuery(user)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.withRetry(ctx, "add user", func() error {
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
		if postgresError(scanErr) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(scanErr) {
			return errDomain(ErrUsernameExists)
		}
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddUser").Msg("error adding user")
		return 0, err
	}

	return id, nil
}

// UpdateCredential replaces the stored credential of a user.
func (r *userRepository) UpdateCredential(ctx context.Context, userID int64, credential string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateCredentialQuery(userID, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "update credential", func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		return requireAffected(res, ErrUserNotFound)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredential").Int64("user_id", userID).Msg("error updating credential")
		return err
	}

	return nil
}

// ListUsers returns every user ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, "list users", func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		users = make([]models.User, 0, 8)
		for rows.Next() {
			var u models.User
			if scanErr := rows.Scan(&u.UserID, &u.Username, &u.Credential, &u.Role); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			users = append(users, u)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// requireAffected turns a zero-row UPDATE or DELETE into notFound.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return errDomain(notFound)
	}
	return nil
}
