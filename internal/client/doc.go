// Package client реализует HTTP-клиент для Pollination API.
//
// # Обзор
//
// Клиент — тонкая обёртка над net/http: добавляет к каждому запросу
// базовый адрес, заголовок аутентификации x-pollination-token и
// организацию-владельца проектов. Вся бизнес-логика (планирование jobs,
// хранение артефактов, выполнение симуляций) живёт на сервере.
//
//	c := client.New(client.Options{
//		BaseURL: "https://api.staging.pollination.cloud",
//		Org:     "my-org",
//		APIKey:  key,
//	}, logger)
//	user, err := c.GetUser(ctx)
//
// # Ключевые операции
//
//   - CreateProject / AddRecipeFilter — подготовка проекта
//   - UploadArtifact — двухшаговая загрузка файла: регистрация ключа
//     в API, затем form-upload по подписанному URL хранилища
//   - CreateJob / GetJob / WaitForJob — запуск параметризованного job
//     и поллинг его статуса с фиксированным бюджетом попыток
//   - ListRuns / GetRunOutputURL / DownloadRunOutput — получение
//     результатов отдельных runs
//
// Все операции принимают context.Context; пауза между опросами статуса
// прерывается отменой контекста.
package client
