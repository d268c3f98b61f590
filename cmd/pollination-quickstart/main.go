// Pollination Quickstart — сквозной пример работы с Pollination API:
// создаёт simulation job, параметризованный несколькими 3D-моделями,
// и скачивает результаты.
//
// Последовательность:
//
//  1. Создать (или переиспользовать) проект
//  2. Подключить recipe через фильтр
//  3. Загрузить файлы моделей как артефакты
//  4. Создать job: один список аргументов на модель → один run на модель
//  5. Поллить статус job с фиксированным бюджетом попыток
//  6. Скачать первый output каждого run'а в {run_id}-{output}.zip
//
// Использование:
//
//	POLLINATION_API_KEY=... POLLINATION_ORG=... pollination-quickstart [MODEL...]
//
// Без аргументов загружаются model1.hbjson и model2.hbjson из текущей
// директории. Если задан POLLINATION_METRICS_ADDR, на время работы
// поднимается /metrics endpoint с метриками запросов к API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/pollination-go/internal/client"
	"github.com/shaiso/pollination-go/internal/config"
	"github.com/shaiso/pollination-go/internal/domain"
	"github.com/shaiso/pollination-go/internal/telemetry"
)

const (
	projectName        = "good-project"
	projectDescription = "A very good project"

	// Параметры recipe из туториала daylight-factor.
	recipeOwner = "ladybug-tools"
	recipeName  = "daylight-factor"
	recipeTag   = "0.5.6"

	// Имя input'а recipe, к которому привязываются модели.
	modelInput = "model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger := telemetry.SetupLogger(cfg.Logger.Level, cfg.Logger.Format)
	logger.Info("starting pollination-quickstart")

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Метрики на время долгого поллинга
	if cfg.Metrics.Addr != "" {
		go func() {
			logger.Info("metrics listening", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, telemetry.MetricsHandler()); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	models := os.Args[1:]
	if len(models) == 0 {
		models = []string{"model1.hbjson", "model2.hbjson"}
	}

	c := client.New(client.Options{
		BaseURL:   cfg.API.URL,
		Org:       cfg.API.Org,
		APIKey:    cfg.API.Key,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
	}, logger)

	if err := run(ctx, c, cfg, logger, models); err != nil {
		logger.Error("quickstart failed", "error", err)
		os.Exit(1)
	}

	logger.Info("quickstart finished")
}

func run(ctx context.Context, c *client.Client, cfg *config.Config, logger *slog.Logger, models []string) error {
	// Создаём проект; при повторном запуске переиспользуем существующий.
	project, err := c.CreateProject(ctx, domain.ProjectCreate{
		Name:        projectName,
		Description: projectDescription,
		Public:      true,
	})
	switch {
	case errors.Is(err, client.ErrProjectExists):
		logger.Info("project already exists, reusing", "project", projectName)
		project, err = c.GetProject(ctx, projectName)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}
	logger.Info("project ready", "project", project.Name, "id", project.ID)

	// Подключаем recipe через фильтр.
	err = c.AddRecipeFilter(ctx, projectName, domain.RecipeFilter{
		Owner: recipeOwner,
		Name:  recipeName,
		Tag:   recipeTag,
	})
	if err != nil {
		return err
	}
	logger.Info("recipe added", "recipe", recipeOwner+"/"+recipeName+"/"+recipeTag)

	// Загружаем модели и строим аргументы job'а. Каждый набор аргументов
	// заворачивается в собственный список: по одному run на модель.
	arguments := make([][]domain.JobArgument, 0, len(models))
	for _, path := range models {
		artifact, err := c.UploadArtifact(ctx, projectName, path, "")
		if err != nil {
			return err
		}
		arguments = append(arguments, []domain.JobArgument{
			domain.ProjectFolderArgument(modelInput, artifact.Key),
		})
	}

	// Создаём job, ссылаясь на recipe его registry-URL'ом.
	job, err := c.CreateJob(ctx, projectName, domain.JobSpec{
		Source:    c.RecipeSourceURL(recipeOwner, recipeName, recipeTag),
		Arguments: arguments,
	})
	if err != nil {
		return err
	}
	logger.Info("job created", "job_id", job.ID, "runs", len(models))

	// Поллим до финального статуса в пределах бюджета.
	if _, err := c.WaitForJob(ctx, projectName, job.ID, client.PollOptions{
		Interval: cfg.Poll.Interval,
		MaxPolls: cfg.Poll.MaxPolls,
	}); err != nil {
		return err
	}

	// Скачиваем первый output каждого run'а. Набор outputs определяется
	// выбранным recipe.
	runs, err := c.ListRuns(ctx, projectName, job.ID)
	if err != nil {
		return err
	}

	for _, r := range runs {
		names := r.OutputNames()
		if len(names) == 0 {
			logger.Warn("run has no outputs, skipping", "run_id", r.ID)
			continue
		}

		dest := client.OutputFilename(r.ID, names[0])
		if err := c.DownloadRunOutput(ctx, projectName, r.ID, names[0], dest); err != nil {
			return err
		}
	}

	return nil
}
