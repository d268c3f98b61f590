// Package domain содержит типы данных Pollination API.
//
// Все типы — плоские записи, зеркалирующие JSON-схемы удалённого API
// (https://api.pollination.cloud/redoc). У них нет клиентского жизненного
// цикла: они конструируются, сериализуются и отправляются.
//
// # Основные сущности
//
//   - Account — пользователь или организация
//   - Project — контейнер для артефактов и jobs
//   - RecipeFilter — фильтр для подключения recipe к проекту
//   - Artifact — загружаемый файл (например, 3D-модель)
//   - Job — единица параметризованной симуляции, состоит из runs
//   - Run — одно выполнение внутри job для одного набора аргументов
//
// Статусы job и run определены в status.go вместе с их жизненным циклом.
package domain
