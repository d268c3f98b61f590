// Pollination CLI — инструмент командной строки для Pollination cloud
// simulation API: проекты, recipes, артефакты, jobs и runs через HTTP.
//
// Использование:
//
//	pollination [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	account   Просмотр аккаунтов
//	project   Управление проектами
//	recipe    Подключение recipes к проектам
//	artifact  Загрузка файлов в проекты
//	job       Запуск и мониторинг jobs
//	run       Результаты runs
//
// Конфигурация через окружение: POLLINATION_API_KEY, POLLINATION_ORG,
// опционально POLLINATION_API_URL и параметры поллинга (см. internal/config).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/cli"
	"github.com/shaiso/pollination-go/internal/client"
	"github.com/shaiso/pollination-go/internal/config"
	"github.com/shaiso/pollination-go/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger := telemetry.SetupLogger(cfg.Logger.Level, cfg.Logger.Format)

	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "pollination",
		Short:         "Pollination CLI — cloud simulation client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *client.Client {
		return client.New(client.Options{
			BaseURL:   cfg.API.URL,
			Org:       cfg.API.Org,
			APIKey:    cfg.API.Key,
			Timeout:   cfg.API.Timeout,
			RateLimit: cfg.API.RateLimit,
		}, logger)
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }
	pollFn := func() client.PollOptions {
		return client.PollOptions{
			Interval: cfg.Poll.Interval,
			MaxPolls: cfg.Poll.MaxPolls,
		}
	}

	rootCmd.AddCommand(
		cli.NewAccountCmd(clientFn, outputFn),
		cli.NewProjectCmd(clientFn, outputFn),
		cli.NewRecipeCmd(clientFn, outputFn),
		cli.NewArtifactCmd(clientFn, outputFn),
		cli.NewJobCmd(clientFn, outputFn, pollFn),
		cli.NewRunCmd(clientFn, outputFn),
	)

	// Отмена по Ctrl+C прерывает и запросы, и паузы поллинга.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
