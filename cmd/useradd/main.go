package main

import (
	"fmt"
	"os"
	"strings"

	"rocket_help/internal/adapter/persistence/repository"
	"rocket_help/internal/infrastructure/auth"
	"rocket_help/internal/infrastructure/database"
	"rocket_help/internal/usecase"
	"rocket_help/pkg/config"
	"rocket_help/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "useradd",
	Short: "Register a Rocket Help user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		log := logger.New(cfg.Log.Level)
		defer func() { _ = log.Sync() }()

		ctx := cmd.Context()
		ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB, log)
		users := usecase.NewUserUseCase(repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable), auth.HashPassword, log)

		u, err := users.Register(ctx, viper.GetString("email"), viper.GetString("name"), viper.GetString("password"))
		if err != nil {
			return err
		}
		fmt.Printf("created user %s (%s)\n", u.ID, u.Email)
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	rootCmd.Flags().String("email", "", "user email")
	rootCmd.Flags().String("name", "", "display name")
	rootCmd.Flags().String("password", "", "password (or USERADD_PASSWORD)")
	_ = viper.BindPFlag("email", rootCmd.Flags().Lookup("email"))
	_ = viper.BindPFlag("name", rootCmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("password", rootCmd.Flags().Lookup("password"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("USERADD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
