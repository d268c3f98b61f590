package domain

// JobStatus — статус выполнения job на сервере.
//
// Жизненный цикл:
//
//	Created → Pre-Processing → Running → Post-Processing → Completed
//	                                   ↘ Failed
//	          (или) → Cancelled (на любом этапе до завершения)
type JobStatus string

const (
	// JobStatusCreated — job создан, но ещё не начал выполняться.
	JobStatusCreated JobStatus = "Created"

	// JobStatusPreProcessing — сервер подготавливает входные данные.
	JobStatusPreProcessing JobStatus = "Pre-Processing"

	// JobStatusRunning — runs выполняются.
	JobStatusRunning JobStatus = "Running"

	// JobStatusPostProcessing — сервер собирает результаты runs.
	JobStatusPostProcessing JobStatus = "Post-Processing"

	// JobStatusCompleted — все runs успешно завершены.
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed — job завершился с ошибкой.
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCancelled — job отменён пользователем.
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusUnknown — сервер не смог определить статус.
	JobStatusUnknown JobStatus = "Unknown"
)

// IsTerminal возвращает true, если статус финальный (job завершён
// и дальнейший поллинг не имеет смысла).
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// RunStatus — статус одного run внутри job.
//
// Жизненный цикл:
//
//	Scheduled → Running → Succeeded
//	                    ↘ Failed
type RunStatus string

const (
	// RunStatusScheduled — run запланирован, ожидает ресурсов.
	RunStatusScheduled RunStatus = "Scheduled"

	// RunStatusRunning — run выполняется.
	RunStatusRunning RunStatus = "Running"

	// RunStatusSucceeded — run успешно завершён, outputs доступны.
	RunStatusSucceeded RunStatus = "Succeeded"

	// RunStatusFailed — run завершился с ошибкой.
	RunStatusFailed RunStatus = "Failed"
)

// IsTerminal возвращает true, если статус финальный.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusSucceeded, RunStatusFailed:
		return true
	default:
		return false
	}
}
