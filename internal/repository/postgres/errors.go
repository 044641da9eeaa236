package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aidar/teams/internal/domain"
)

// Коды ошибок PostgreSQL
const codeForeignKeyViolation = "23503"

// Имена внешних ключей из миграций
const (
	fkStatusTeam    = "team_statuses_team_id_fkey"
	fkStatusUser    = "team_statuses_user_id_fkey"
	fkOwnershipTeam = "ownerships_team_id_fkey"
)

// mapConstraintError преобразует нарушение внешнего ключа в доменную ошибку
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case fkStatusUser:
		return domain.ErrUserNotFound
	case fkStatusTeam, fkOwnershipTeam:
		return domain.ErrTeamNotFound
	default:
		return err
	}
}
