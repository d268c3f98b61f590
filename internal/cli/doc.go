// Package cli реализует команды Pollination CLI.
//
// # Обзор
//
// CLI — клиентская утилита для Pollination cloud simulation API.
// Работает только через HTTP: создаёт проекты, подключает recipes,
// загружает артефакты, запускает jobs и скачивает результаты runs.
//
// # Ключевые компоненты
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.MarshalIndent) — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: pollination job list p --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - account: show, whoami
//   - project: create, show
//   - recipe: add
//   - artifact: upload
//   - job: submit, list, show, watch, artifacts, link
//   - run: list, download, download-all
//
// Каждая группа создаётся через фабричную функцию (NewJobCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// client.Client и Output после парсинга PersistentFlags.
package cli
