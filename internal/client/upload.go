package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/shaiso/pollination-go/internal/domain"
)

// UploadArtifact загружает локальный файл в проект.
//
// Загрузка двухшаговая: файлы хранятся у облачного провайдера, поэтому
// сначала API регистрирует ключ и выдаёт подписанный URL с полями
// авторизации, затем содержимое отправляется form-upload'ом напрямую
// в хранилище. Хранилище отвечает 204 No Content.
//
// Пустой key означает имя файла (filepath.Base).
func (c *Client) UploadArtifact(ctx context.Context, project, localPath, key string) (*domain.Artifact, error) {
	if key == "" {
		key = filepath.Base(localPath)
	}
	artifact := domain.Artifact{Key: key}

	var upload domain.ArtifactUpload
	if err := c.post(ctx, projectArtifactsPath(c.org, project), artifact, &upload); err != nil {
		return nil, err
	}

	if err := c.uploadFile(ctx, upload, localPath, key); err != nil {
		return nil, err
	}

	c.logger.Info("artifact uploaded", "key", key, "project", c.org+"/"+project)
	return &artifact, nil
}

// uploadFile отправляет содержимое файла в хранилище по подписанному URL.
func (c *Client) uploadFile(ctx context.Context, upload domain.ArtifactUpload, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	// Поля авторизации должны идти до части file: хранилище читает
	// форму последовательно.
	for field, value := range upload.Fields {
		if err := form.WriteField(field, value); err != nil {
			return fmt.Errorf("%w: write field %s: %v", ErrUploadFailed, field, err)
		}
	}

	part, err := form.CreateFormFile("file", key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, upload.URL, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	// Запрос идёт в хранилище, не в API: без auth-заголовка.
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: HTTP %d: %s", ErrUploadFailed, resp.StatusCode, truncate(string(body), 200))
	}

	return nil
}
