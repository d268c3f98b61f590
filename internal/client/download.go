package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// OutputFilename — имя локального файла для output'а run'а:
// "{run_id}-{output_name}.zip".
func OutputFilename(runID, outputName string) string {
	return runID + "-" + outputName + ".zip"
}

// DownloadRunOutput скачивает один output run'а в локальный файл:
// запрашивает у API подписанный URL и сохраняет содержимое в destPath.
func (c *Client) DownloadRunOutput(ctx context.Context, project, runID, outputName, destPath string) error {
	link, err := c.GetRunOutputURL(ctx, project, runID, outputName)
	if err != nil {
		return err
	}

	if err := c.DownloadFile(ctx, link, destPath); err != nil {
		return err
	}

	c.logger.Info("run output downloaded",
		"run_id", runID,
		"output", outputName,
		"path", destPath,
	)
	return nil
}

// DownloadFile скачивает файл по URL в destPath.
//
// URL подписан хранилищем, auth-заголовок API не передаётся.
func (c *Client) DownloadFile(ctx context.Context, fileURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d", ErrDownloadFailed, resp.StatusCode)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(destPath)
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return file.Close()
}
