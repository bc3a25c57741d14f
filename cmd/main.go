package main

import (
	"Pantry-Tracker/cmd/config"
	migration "Pantry-Tracker/cmd/database/migrate"
	"Pantry-Tracker/internal/utils"
	"Pantry-Tracker/internal/utils/mailing"
	"Pantry-Tracker/pkg/pantry"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "pantry",
		Short:        "Track pantry items, their expiry dates and the shopping list",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return utils.LoadConfigFile(configPath)
			}
			utils.LoadConfig()
			return nil
		},
		RunE: runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the database and start the web server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := connectAndMigrate()
				return err
			},
		},
		newDigestCommand(),
	)
	return root
}

func newDigestCommand() *cobra.Command {
	var recipient string

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Mail the list of pantry items expiring within a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connectAndMigrate()
			if err != nil {
				return err
			}
			if recipient == "" {
				recipient = utils.GetConfig("DIGEST_RECIPIENT")
			}

			pantryService := pantry.NewPantryService(pantry.NewPantryRepository(db), utils.GetLocation())
			sent, err := pantry.NewExpiryDigest(pantryService, mailing.SendMail).Send(cmd.Context(), recipient)
			if err != nil {
				return err
			}
			log.Infof("digest listed %d item(s)", sent)
			return nil
		},
	}
	cmd.Flags().StringVar(&recipient, "to", "", "recipient address (default DIGEST_RECIPIENT)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := connectAndMigrate()
	if err != nil {
		return err
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}
	return app.Listen(":" + utils.GetConfig("APP_PORT"))
}

func connectAndMigrate() (*gorm.DB, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
