package repository

import (
	"context"

	"github.com/aidar/teams/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
}

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	// Create создает новую команду и заполняет ID и CreatedAt
	Create(ctx context.Context, team *domain.Team) error

	// GetByID получает команду по ID
	GetByID(ctx context.Context, teamID int64) (*domain.Team, error)

	// List возвращает все команды
	List(ctx context.Context) ([]*domain.Team, error)

	// Count возвращает количество команд
	Count(ctx context.Context) (int, error)
}

// TeamStatusRepository определяет методы для работы с историей ролей участников
type TeamStatusRepository interface {
	// Create добавляет новую запись статуса (без дедупликации)
	Create(ctx context.Context, status *domain.TeamStatus) error

	// Current возвращает последнюю запись для пары (команда, пользователь)
	Current(ctx context.Context, teamID, userID int64) (*domain.TeamStatus, error)

	// History возвращает все записи для пары (команда, пользователь), новые первыми
	History(ctx context.Context, teamID, userID int64) ([]*domain.TeamStatus, error)

	// SetCurrentRole обновляет роль в последней записи пары (команда, пользователь)
	SetCurrentRole(ctx context.Context, teamID, userID int64, role domain.Role) (*domain.TeamStatus, error)

	// UpdateRole обновляет роль в записи с указанным ID
	UpdateRole(ctx context.Context, statusID int64, role domain.Role) error

	// CountByTeam возвращает количество записей статуса команды
	CountByTeam(ctx context.Context, teamID int64) (int, error)

	// CountByTeamUser возвращает количество записей статуса для пары (команда, пользователь)
	CountByTeamUser(ctx context.Context, teamID, userID int64) (int, error)

	// MembersByRole возвращает пользователей, у которых есть хотя бы одна запись с указанной ролью.
	// Нулевая роль возвращает всех пользователей команды.
	MembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error)

	// CurrentMembersByRole возвращает пользователей, текущая роль которых совпадает с указанной.
	// Нулевая роль возвращает всех пользователей команды.
	CurrentMembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error)
}

// OwnershipRepository определяет методы для работы с записями владения
type OwnershipRepository interface {
	// Create создает запись владения и заполняет ID и CreatedAt
	Create(ctx context.Context, ownership *domain.Ownership) error

	// GetByID получает запись владения по ID
	GetByID(ctx context.Context, ownershipID int64) (*domain.Ownership, error)

	// List возвращает записи владения, подходящие под фильтр
	List(ctx context.Context, filter domain.OwnershipFilter) ([]*domain.Ownership, error)

	// ObjectTypes возвращает различные типы объектов, которыми владеет команда
	ObjectTypes(ctx context.Context, teamID int64) ([]string, error)

	// SetApproved обновляет флаг подтверждения
	SetApproved(ctx context.Context, ownershipID int64, approved bool) error

	// Delete удаляет запись владения
	Delete(ctx context.Context, ownershipID int64) error
}
