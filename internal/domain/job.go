package domain

import "time"

// PathSource — источник файла для аргумента job.
//
// Тип "ProjectFolder" означает файл, ранее загруженный в проект
// как artifact (см. Artifact.Key).
type PathSource struct {
	// Type — дискриминатор схемы. Для артефактов проекта — "ProjectFolder".
	Type string `json:"type"`

	// Path — ключ файла в хранилище проекта.
	Path string `json:"path"`
}

// JobArgument — один именованный аргумент run'а.
//
// Name должен соответствовать именованному input'у выбранного recipe
// (например, "model" для daylight-factor).
type JobArgument struct {
	// Type — дискриминатор схемы, всегда "JobPathArgument" для файловых
	// аргументов.
	Type string `json:"type"`

	// Name — имя input'а recipe.
	Name string `json:"name"`

	// Source — откуда взять файл.
	Source PathSource `json:"source"`
}

// ProjectFolderArgument создаёт файловый аргумент, ссылающийся на artifact
// проекта по его ключу.
func ProjectFolderArgument(name, path string) JobArgument {
	return JobArgument{
		Type: "JobPathArgument",
		Name: name,
		Source: PathSource{
			Type: "ProjectFolder",
			Path: path,
		},
	}
}

// JobSpec — payload для создания job.
//
// Job параметризуется списком списков аргументов: каждый внутренний список —
// полный набор аргументов одного run'а. Передав N списков, получаем N runs
// одной и той же симуляции с разными параметрами.
//
// Schema: https://api.pollination.cloud/redoc#operation/create_job
type JobSpec struct {
	// Source — URL recipe в registry:
	// "{base}/registries/{owner}/recipe/{name}/{tag}".
	Source string `json:"source"`

	// Arguments — наборы аргументов, по одному на run.
	Arguments [][]JobArgument `json:"arguments"`
}

// JobStatusInfo — блок status в ответе API.
type JobStatusInfo struct {
	// Status — текущий статус job.
	Status JobStatus `json:"status"`

	// StartedAt — время начала выполнения.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения. Nil, если job ещё выполняется.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Job — job из API.
type Job struct {
	// ID — уникальный идентификатор job.
	ID string `json:"id"`

	// Spec — спецификация, с которой job был создан.
	Spec *JobSpec `json:"spec,omitempty"`

	// Status — текущее состояние выполнения.
	Status *JobStatusInfo `json:"status,omitempty"`

	// CreatedAt — время создания job.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CurrentStatus возвращает статус job или JobStatusUnknown, если сервер
// ещё не заполнил блок status.
func (j *Job) CurrentStatus() JobStatus {
	if j.Status == nil {
		return JobStatusUnknown
	}
	return j.Status.Status
}

// IsFinished возвращает true, если job завершён (в любом статусе).
func (j *Job) IsFinished() bool {
	return j.CurrentStatus().IsTerminal()
}
