package cmd

import (
	"strings"

	"github.com/caic-xyz/website/internal/bootstrap"
	"github.com/caic-xyz/website/internal/config"
	"github.com/caic-xyz/website/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "website",
	Short: "Waitlist collection backend for the caic website.",
	Long:  `A small web backend that collects waitlist submissions and exposes a Google-login gated admin view for managing them.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("Parsing config")
		var cfg config.Config
		err := viper.Unmarshal(&cfg)
		HandleError(err, "Failed to parse config")

		// Secrets may come from files instead of the environment
		cfg.SessionSecret = utils.GetSecret(cfg.SessionSecret, cfg.SessionSecretFile)
		cfg.GoogleClientSecret = utils.GetSecret(cfg.GoogleClientSecret, cfg.GoogleClientSecretFile)

		log.Info().Msg("Validating config")
		validate := validator.New()
		err = validate.Struct(cfg)
		HandleError(err, "Invalid config")

		level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		HandleError(err, "Invalid log level")
		zerolog.SetGlobalLevel(level)

		app := bootstrap.NewBootstrapApp(cfg)
		err = app.Setup()
		HandleError(err, "Failed to start app")
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}

func HandleError(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	viper.AutomaticEnv()
	rootCmd.Flags().Int("port", 3000, "Port to run the server on.")
	rootCmd.Flags().String("address", "0.0.0.0", "Address to bind the server to.")
	rootCmd.Flags().String("app-url", "", "Public URL of the app, used as the OAuth redirect origin.")
	rootCmd.Flags().String("google-client-id", "", "Google OAuth client ID.")
	rootCmd.Flags().String("google-client-secret", "", "Google OAuth client secret.")
	rootCmd.Flags().String("google-client-secret-file", "", "Path to a file containing the Google OAuth client secret.")
	rootCmd.Flags().String("session-secret", "", "Secret used to sign session tokens, at least 32 characters.")
	rootCmd.Flags().String("session-secret-file", "", "Path to a file containing the session signing secret.")
	rootCmd.Flags().String("admin-emails", "", "Comma separated list of emails allowed to access the admin view.")
	rootCmd.Flags().String("webhook-url", "", "Optional URL notified about new submissions, best effort.")
	rootCmd.Flags().String("database-path", "data/waitlist.db", "Path to the sqlite database.")
	rootCmd.Flags().Bool("secure-cookie", true, "Send cookies over secure connections only.")
	rootCmd.Flags().String("log-level", "info", "Log level.")
	rootCmd.Flags().String("trusted-proxies", "", "Comma separated list of trusted proxies.")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("address", "ADDRESS")
	viper.BindEnv("app-url", "APP_URL")
	viper.BindEnv("google-client-id", "GOOGLE_CLIENT_ID")
	viper.BindEnv("google-client-secret", "GOOGLE_CLIENT_SECRET")
	viper.BindEnv("google-client-secret-file", "GOOGLE_CLIENT_SECRET_FILE")
	viper.BindEnv("session-secret", "SESSION_SECRET")
	viper.BindEnv("session-secret-file", "SESSION_SECRET_FILE")
	viper.BindEnv("admin-emails", "ADMIN_EMAILS")
	viper.BindEnv("webhook-url", "WEBHOOK_URL")
	viper.BindEnv("database-path", "DATABASE_PATH")
	viper.BindEnv("secure-cookie", "SECURE_COOKIE")
	viper.BindEnv("log-level", "LOG_LEVEL")
	viper.BindEnv("trusted-proxies", "TRUSTED_PROXIES")
	viper.BindPFlags(rootCmd.Flags())
}
