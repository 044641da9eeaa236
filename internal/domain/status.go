package domain

import (
	"fmt"
	"time"
)

// Role представляет роль пользователя в команде
type Role int16

// Возможные роли участника команды
const (
	RolePending Role = 1  // Приглашен, ожидает подтверждения
	RoleMember  Role = 10 // Подтвержденный участник
	RoleOwner   Role = 20 // Владелец команды
)

// Valid проверяет, что роль является одной из известных
func (r Role) Valid() bool {
	switch r {
	case RolePending, RoleMember, RoleOwner:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	switch r {
	case RolePending:
		return "pending"
	case RoleMember:
		return "member"
	case RoleOwner:
		return "owner"
	default:
		return fmt.Sprintf("role(%d)", int16(r))
	}
}

// TeamStatus представляет запись о роли пользователя в команде.
// Для пары (команда, пользователь) хранится история записей,
// текущей считается запись с наибольшим ID.
type TeamStatus struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	UserID    int64     `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Approve переводит запись в статус подтвержденного участника
func (s *TeamStatus) Approve() {
	s.Role = RoleMember
}

// IsPending возвращает true если пользователь еще не подтвержден
func (s *TeamStatus) IsPending() bool {
	return s.Role == RolePending
}
