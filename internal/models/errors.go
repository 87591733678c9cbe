package models

import "errors"

var (
	// ErrNotFound - сущность с таким идентификатором отсутствует в хранилище
	ErrNotFound = errors.New("not found")
	// ErrConflict - сущность с таким идентификатором уже существует
	ErrConflict = errors.New("already exists")
	// ErrUnknownIncident - поле ссылается на инцидент, которого нет в хранилище
	ErrUnknownIncident = errors.New("referenced incident does not exist")
)
