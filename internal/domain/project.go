package domain

import "time"

// ProjectCreate — payload для создания проекта.
//
// Schema: https://api.pollination.cloud/redoc#operation/create_project
type ProjectCreate struct {
	// Name — имя проекта, уникальное в пределах аккаунта.
	Name string `json:"name"`

	// Description — описание проекта.
	Description string `json:"description,omitempty"`

	// Public — true, если проект виден всем пользователям.
	Public bool `json:"public"`
}

// ProjectOwner — владелец проекта в ответе API.
type ProjectOwner struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Project — проект из API.
type Project struct {
	// ID — уникальный идентификатор проекта.
	ID string `json:"id"`

	// Name — имя проекта.
	Name string `json:"name"`

	// Slug — полный путь проекта: "{owner}/{name}".
	Slug string `json:"slug,omitempty"`

	// Description — описание проекта.
	Description string `json:"description,omitempty"`

	// Public — виден ли проект всем пользователям.
	Public bool `json:"public"`

	// Owner — аккаунт-владелец проекта.
	Owner *ProjectOwner `json:"owner,omitempty"`

	// CreatedAt — время создания проекта.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
