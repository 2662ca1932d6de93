package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/cragbase/cragbase/internal/application/mailer"
	mailerUsecases "github.com/cragbase/cragbase/internal/application/mailer/usecases"
	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/email"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/infrastructure/template"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

var (
	env        string
	configPath string
	later      bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Mail delivery tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	test := &cobra.Command{
		Use:   "test",
		Short: "Send the test email",
		Long:  `Send the test email to the addresses listed under mailer.contributor_emails in the credentials file.`,
		RunE:  runTest,
	}
	test.Flags().BoolVar(&later, "later", false, "Queue the email for the worker instead of sending it now")

	cmd.AddCommand(test)
	return cmd
}

func runTest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b, err := brand.New(cfg.Brand)
	if err != nil {
		return err
	}
	catalog, err := locale.NewCatalog(cfg.I18n.Path, cfg.I18n.DefaultLocale, log)
	if err != nil {
		return err
	}
	translator := i18n.NewTranslator(catalog, b)

	renderer := template.NewMailRenderer(translator, cfg.Mailer.TemplatesPath, log)
	if err := renderer.Load(); err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}

	creds, err := config.LoadCredentials(cfg.Credentials.Path)
	if err != nil {
		return err
	}

	transport, err := email.NewTransport(ctx, cfg.Mailer, log)
	if err != nil {
		return err
	}

	var queue *email.Queue
	if later {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		queue = email.NewQueue(client, cfg.Mailer.Queue.Key)
	}

	base := mailer.NewBase(b, renderer, email.NewDeliverer(transport, queue, log), log)
	uc := mailerUsecases.NewSendTestEmailUseCase(mailer.NewTestMailer(base, creds), log)

	result, err := uc.Execute(ctx, mailerUsecases.SendTestEmailCommand{Later: later})
	if err != nil {
		return err
	}

	verb := "Sent"
	if result.Queued {
		verb = "Queued"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %q to %s\n", verb, result.Subject, strings.Join(result.Recipients, ", "))
	return nil
}
