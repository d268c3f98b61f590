package domain

// Artifact — payload для регистрации файла в проекте.
//
// Schema: https://api.pollination.cloud/redoc#operation/create_artifact
type Artifact struct {
	// Key — путь файла внутри хранилища проекта. Позже на него
	// ссылаются аргументы job через ProjectFolder source.
	Key string `json:"key"`
}

// ArtifactUpload — ответ API на регистрацию артефакта.
//
// Файлы хранятся у облачного провайдера, поэтому API возвращает
// подписанный URL и поля авторизации для form-upload, а не принимает
// содержимое напрямую.
type ArtifactUpload struct {
	// URL — адрес bucket'а для загрузки.
	URL string `json:"url"`

	// Fields — поля multipart-формы, которые должны быть отправлены
	// вместе с файлом (ключ хранилища, политика, подпись).
	Fields map[string]string `json:"fields"`
}

// JobArtifact — файл, созданный или использованный job'ом
// (GET .../jobs/{id}/artifacts).
type JobArtifact struct {
	// Name — имя файла.
	Name string `json:"name"`

	// Key — полный ключ файла в хранилище.
	Key string `json:"key"`

	// FileType — "file" или "folder".
	FileType string `json:"file_type,omitempty"`

	// Size — размер файла в байтах.
	Size int64 `json:"size,omitempty"`
}
