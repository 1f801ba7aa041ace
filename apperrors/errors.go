package apperrors

import "errors"

// Таксономия доменных ошибок. Handlers сопоставляют их с HTTP статусами
// через errors.Is, сервисы оборачивают через fmt.Errorf("...: %w", ...).
var (
	// ErrNotFound — сущность или связь не найдена.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — нарушена граница авторизации (учитель не владеет классом).
	ErrForbidden = errors.New("forbidden")

	// ErrConflict — нарушена уникальность (email, пара enrollment) или
	// удаляется строка, на которую ещё есть ссылки.
	ErrConflict = errors.New("conflict")

	// ErrValidation — отсутствует или некорректно обязательное поле.
	ErrValidation = errors.New("validation failed")
)
