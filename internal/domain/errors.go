package domain

import "errors"

// Доменные ошибки
var (
	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrStatusNotFound возвращается когда у пользователя нет записи статуса в команде
	ErrStatusNotFound = errors.New("team status not found")

	// ErrOwnershipNotFound возвращается когда запись владения не найдена
	ErrOwnershipNotFound = errors.New("ownership not found")

	// ErrUnknownObjectType возвращается для типа объекта, не зарегистрированного в реестре
	ErrUnknownObjectType = errors.New("unknown object type")

	// ErrUnsavedObject возвращается при попытке сослаться на объект без идентификатора
	ErrUnsavedObject = errors.New("object has no id")

	// ErrInvalidTeamName возвращается при попытке создать команду без названия
	ErrInvalidTeamName = errors.New("team name is required")

	// ErrInvalidRole возвращается для неизвестного кода роли
	ErrInvalidRole = errors.New("invalid team role")
)

// IsNotFound проверяет, относится ли ошибка к отсутствующему ресурсу
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrStatusNotFound) ||
		errors.Is(err, ErrOwnershipNotFound)
}
