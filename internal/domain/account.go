package domain

// User — приватный профиль текущего пользователя (GET /user).
type User struct {
	// ID — уникальный идентификатор пользователя.
	ID string `json:"id"`

	// Username — уникальное имя пользователя (slug).
	Username string `json:"username"`

	// Name — отображаемое имя.
	Name string `json:"name,omitempty"`

	// Email — почта, привязанная к аккаунту.
	Email string `json:"email,omitempty"`

	// Picture — URL аватара.
	Picture string `json:"picture,omitempty"`
}

// Account — публичный аккаунт: пользователь или организация
// (GET /accounts/{name}).
//
// Организация задаётся переменной окружения POLLINATION_ORG и
// используется как owner для всех проектов.
type Account struct {
	// ID — уникальный идентификатор аккаунта.
	ID string `json:"id"`

	// AccountType — тип аккаунта: "user" или "org".
	AccountType string `json:"account_type"`

	// Name — уникальное имя аккаунта (slug).
	Name string `json:"name"`

	// DisplayName — отображаемое имя.
	DisplayName string `json:"display_name,omitempty"`

	// Description — описание аккаунта.
	Description string `json:"description,omitempty"`

	// Picture — URL аватара.
	Picture string `json:"picture,omitempty"`
}
