// Package config загружает конфигурацию из переменных окружения.
//
// Каждый запуск параметризуется двумя обязательными переменными:
//
//	POLLINATION_API_KEY — API-ключ, передаётся в заголовке x-pollination-token
//	POLLINATION_ORG     — аккаунт (организация), владеющий проектами
//
// Остальные переменные имеют значения по умолчанию, см. Load.
package config
