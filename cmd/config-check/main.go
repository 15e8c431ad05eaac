package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"securitydashboard/internal/config"
)

var asJSON bool

var rootCmd = &cobra.Command{
	Use:           "config-check",
	Short:         "Проверка конфигурации дашборда",
	Long:          "Загружает конфигурацию из переменных окружения, проверяет ее и выводит без значений ключей API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigCheck,
}

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "вывести конфигурацию в формате JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, cfg)
	}

	writeReport(out, cfg)
	return nil
}

// writeJSON выводит конфигурацию в JSON; ключи API исключены тегом json:"-"
func writeJSON(w io.Writer, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func writeReport(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "=== Проверка конфигурации ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Основные настройки:")
	fmt.Fprintf(w, "  Порт: %s\n", cfg.Port)
	fmt.Fprintf(w, "  Gin mode: %s\n", valueOr(cfg.GinMode, "release"))
	fmt.Fprintf(w, "  Уровень логирования: %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "  Shutdown Timeout: %v\n", cfg.ShutdownTimeout)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Google Custom Search:")
	fmt.Fprintf(w, "  API Key: %s\n", masked(cfg.Search.APIKey))
	fmt.Fprintf(w, "  Engine ID: %s\n", masked(cfg.Search.EngineID))
	fmt.Fprintf(w, "  Base URL: %s\n", cfg.Search.BaseURL)
	fmt.Fprintf(w, "  Timeout: %v\n", cfg.Search.Timeout)
	fmt.Fprintf(w, "  Rate Limit: %s\n", rateLimit(cfg.Search.RateLimitPerSec))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Have I Been Pwned:")
	fmt.Fprintf(w, "  API Key: %s\n", masked(cfg.Breach.APIKey))
	fmt.Fprintf(w, "  Base URL: %s\n", cfg.Breach.BaseURL)
	fmt.Fprintf(w, "  User-Agent: %s\n", cfg.Breach.UserAgent)
	fmt.Fprintf(w, "  Timeout: %v\n", cfg.Breach.Timeout)
	fmt.Fprintf(w, "  Rate Limit: %s\n", rateLimit(cfg.Breach.RateLimitPerSec))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "✅ Валидация пройдена успешно")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Проверка завершена ===")
}

func masked(secret string) string {
	if secret != "" {
		return "[установлен]"
	}
	return "[не установлен]"
}

func rateLimit(perSec int) string {
	if perSec <= 0 {
		return "без ограничений"
	}
	return fmt.Sprintf("%d req/s", perSec)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
