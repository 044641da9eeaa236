package domain

import (
	"fmt"
	"time"
)

// ObjectTypeTeam тег типа для ссылок на команды
const ObjectTypeTeam = "team"

// Team представляет группу пользователей (команду)
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AbsoluteURL возвращает путь к странице команды
func (t *Team) AbsoluteURL() string {
	return fmt.Sprintf("/teams/%d/", t.ID)
}

// ObjectRef позволяет команде быть объектом владения другой команды
func (t *Team) ObjectRef() ObjectRef {
	return ObjectRef{Type: ObjectTypeTeam, ID: t.ID}
}
