package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	DatabaseURL      string
	Port             string
	BaseURL          string
	JWTSecret        string
	FacilityTZ       string
	CloudinaryURL    string
	CloudinaryFolder string
	SendgridAPIKey   string
	ReminderTo       string
	ReminderCron     string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             os.Getenv("PORT"),
		BaseURL:          os.Getenv("BASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		FacilityTZ:       envOrDefault("FACILITY_TZ", "America/Sao_Paulo"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: envOrDefault("CLOUDINARY_FOLDER", "arquivos-residentes"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		ReminderTo:       os.Getenv("REMINDER_TO"),
		ReminderCron:     envOrDefault("REMINDER_CRON", "0 20 * * *"),
	}

}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err. The client only ever sees the message plus a
// short detail string, never the raw store error.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	body := map[string]string{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	_ = json.NewEncoder(w).Encode(body)
}
