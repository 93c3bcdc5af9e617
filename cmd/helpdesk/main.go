package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	helpdesksdk "rocket_help/sdk/go"
)

var rootCmd = &cobra.Command{
	Use:   "helpdesk",
	Short: "Rocket Help CLI",
	Long: `helpdesk signs in to a Rocket Help server and manages your equipment support requests.
Requests start "open" and are closed once with a solution.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("HELPDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "server base URL")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("locale", string(helpdesksdk.LocalePTBR), "message locale (pt-BR or en)")
	rootCmd.PersistentFlags().String("timezone", "Local", "time zone used to show dates")
	rootCmd.PersistentFlags().String("token-file", defaultTokenFile(), "where the session token is kept")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))
	_ = viper.BindPFlag("token-file", rootCmd.PersistentFlags().Lookup("token-file"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func registerCommands() {
	rootCmd.AddCommand(signInCmd())
	rootCmd.AddCommand(signOutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(ordersCmd())
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".helpdesk-token"
	}
	return filepath.Join(home, ".config", "helpdesk", "token")
}

// app bundles the SDK objects a command needs.
type app struct {
	client  *helpdesksdk.Client
	session *helpdesksdk.Session
	nav     *helpdesksdk.StackNavigator
	opts    []helpdesksdk.ViewOption
}

func newApp() (*app, error) {
	loc, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	client := helpdesksdk.New(viper.GetString("server"))
	client.Timeout = viper.GetDuration("timeout")
	return &app{
		client:  client,
		session: helpdesksdk.NewSession(client),
		nav:     helpdesksdk.NewStackNavigator(),
		opts: []helpdesksdk.ViewOption{
			helpdesksdk.WithLocale(helpdesksdk.Locale(viper.GetString("locale"))),
			helpdesksdk.WithLocation(loc),
			helpdesksdk.WithNotifier(helpdesksdk.NotifierFunc(func(title, message string) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
			})),
		},
	}, nil
}

// restore signs the session in from the saved token.
func (a *app) restore(ctx context.Context) error {
	b, err := os.ReadFile(viper.GetString("token-file"))
	if errors.Is(err, os.ErrNotExist) {
		return errors.New("not signed in: run 'helpdesk signin'")
	}
	if err != nil {
		return err
	}
	if err := a.session.Restore(ctx, string(b)); err != nil {
		if helpdesksdk.ErrorCode(err) == "UNAUTHENTICATED" {
			_ = os.Remove(viper.GetString("token-file"))
			return errors.New("session expired: run 'helpdesk signin'")
		}
		return err
	}
	return nil
}

func saveToken(token string) error {
	path := viper.GetString("token-file")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func signInCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if password == "" {
				password = viper.GetString("password")
			}
			form := helpdesksdk.NewSignInForm(a.session, a.opts...)
			if err := form.Submit(cmd.Context(), email, password); err != nil {
				return err
			}
			if err := saveToken(a.session.Token()); err != nil {
				return err
			}
			u := a.session.User()
			fmt.Printf("signed in as %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "password (or HELPDESK_PASSWORD)")
	return cmd
}

func signOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and forget the saved token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}
			err = a.session.SignOut(cmd.Context())
			if rmErr := os.Remove(viper.GetString("token-file")); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				return rmErr
			}
			if err != nil {
				return err
			}
			fmt.Println("signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.restore(cmd.Context()); err != nil {
				return err
			}
			return printJSONOrText(a.session.User(), func() {
				u := a.session.User()
				fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, u.ID)
			})
		},
	}
}

func printJSONOrText(v any, text func()) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	text()
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
