package domain

import "time"

// RunOutput — один output завершённого run'а.
//
// Набор outputs определяется выбранным recipe; клиент не знает их имён
// заранее и читает их из статуса run'а.
type RunOutput struct {
	// Name — имя output'а из recipe.
	Name string `json:"name"`

	// Description — описание output'а.
	Description string `json:"description,omitempty"`
}

// RunStatusInfo — блок status в ответе API.
type RunStatusInfo struct {
	// Status — текущий статус run.
	Status RunStatus `json:"status"`

	// StartedAt — время начала выполнения.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения. Nil, если run ещё выполняется.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Outputs — outputs run'а. Заполняется после завершения.
	Outputs []RunOutput `json:"outputs,omitempty"`
}

// Run — один экземпляр выполнения внутри job.
//
// Run создаётся сервером для каждого набора аргументов job'а.
type Run struct {
	// ID — уникальный идентификатор run.
	ID string `json:"id"`

	// Status — текущее состояние выполнения.
	Status *RunStatusInfo `json:"status,omitempty"`

	// CreatedAt — время создания run.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CurrentStatus возвращает статус run или пустую строку, если сервер
// ещё не заполнил блок status.
func (r *Run) CurrentStatus() RunStatus {
	if r.Status == nil {
		return ""
	}
	return r.Status.Status
}

// OutputNames возвращает имена всех outputs run'а.
func (r *Run) OutputNames() []string {
	if r.Status == nil {
		return nil
	}
	names := make([]string, len(r.Status.Outputs))
	for i, o := range r.Status.Outputs {
		names[i] = o.Name
	}
	return names
}

// Duration возвращает продолжительность выполнения.
// Возвращает 0, если run ещё не завершён.
func (r *Run) Duration() time.Duration {
	if r.Status == nil || r.Status.StartedAt == nil || r.Status.FinishedAt == nil {
		return 0
	}
	return r.Status.FinishedAt.Sub(*r.Status.StartedAt)
}
