package domain

import "time"

// ObjectTypeUser тег типа для ссылок на пользователей
const ObjectTypeUser = "user"

// User представляет пользователя внешней подсистемы идентификации.
// Команды ссылаются на пользователя только по ID.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ObjectRef возвращает обобщенную ссылку на пользователя
func (u *User) ObjectRef() ObjectRef {
	return ObjectRef{Type: ObjectTypeUser, ID: u.ID}
}
