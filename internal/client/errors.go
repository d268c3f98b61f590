package client

import (
	"errors"
	"fmt"
)

// Ошибки клиента.
var (
	// ErrProjectExists — проект с таким именем уже есть у аккаунта (HTTP 409).
	ErrProjectExists = errors.New("project already exists")

	// ErrJobCancelled — job отменён на сервере.
	ErrJobCancelled = errors.New("job cancelled")

	// ErrJobFailed — job завершился с ошибкой.
	ErrJobFailed = errors.New("job failed")

	// ErrPollBudget — бюджет опросов исчерпан, job не завершился.
	ErrPollBudget = errors.New("poll budget exhausted")

	// ErrUploadFailed — хранилище не приняло файл.
	ErrUploadFailed = errors.New("artifact upload failed")

	// ErrDownloadFailed — не удалось скачать файл по выданному URL.
	ErrDownloadFailed = errors.New("download failed")
)

// APIError — ошибка, возвращённая Pollination API (HTTP >= 400).
type APIError struct {
	// StatusCode — HTTP-код ответа.
	StatusCode int

	// Detail — поле detail из тела ответа либо усечённое сырое тело.
	Detail string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("pollination API: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("pollination API: HTTP %d: %s", e.StatusCode, e.Detail)
}
