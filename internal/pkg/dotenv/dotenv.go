package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const defaultEnvFile = ".env"

// Load разбирает флаги --env-file и --port и подтягивает переменные из env файла.
// Уже выставленные переменные окружения не перезаписываются. Отсутствие .env по умолчанию
// не ошибка, явно указанный файл обязан существовать. --port перекрывает переменную portEnv.
// Возвращает путь загруженного файла или пустую строку.
func Load(args []string, portEnv string) (string, error) {
	flags := pflag.NewFlagSet("env", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true

	envFile := flags.String("env-file", defaultEnvFile, "File with environment variables")
	port := flags.String("port", "", fmt.Sprintf("Listen port (overrides %s environment variable)", portEnv))

	if err := flags.Parse(args); err != nil {
		return "", fmt.Errorf("parse flags: %w", err)
	}

	loaded := ""
	err := godotenv.Load(*envFile)
	switch {
	case err == nil:
		loaded = *envFile
	case errors.Is(err, fs.ErrNotExist) && !flags.Changed("env-file"):
	default:
		return "", fmt.Errorf("load %s: %w", *envFile, err)
	}

	if *port != "" {
		if err := os.Setenv(portEnv, *port); err != nil {
			return "", fmt.Errorf("failed to set %s environment variable: %w", portEnv, err)
		}
	}

	return loaded, nil
}
