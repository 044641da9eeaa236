package domain

import (
	"fmt"
	"time"
)

// ObjectRef представляет обобщенную ссылку на объект приложения (тип, ID)
type ObjectRef struct {
	Type string `json:"object_type"`
	ID   int64  `json:"object_id"`
}

func (r ObjectRef) String() string {
	return fmt.Sprintf("%s:%d", r.Type, r.ID)
}

// Referenceable реализуется объектами, которыми может владеть команда
type Referenceable interface {
	ObjectRef() ObjectRef
}

// Ownership представляет притязание команды на произвольный объект
type Ownership struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	Object    ObjectRef `json:"object"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnershipFilter задает условия выборки записей владения.
// Нулевые поля не ограничивают выборку.
type OwnershipFilter struct {
	TeamID     int64
	ObjectType string
	Approved   *bool
}
