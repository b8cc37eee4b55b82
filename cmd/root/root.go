package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mobo140/platform_common/pkg/closer"
	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/app"
	"github.com/Mobo140/vupp-cli/internal/router"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options are the global flags every command shares.
type Options struct {
	ConfigPath string
	LogLevel   string
	Debug      bool
}

// Builder wires the application once flags are parsed.
type Builder func(ctx context.Context, opts Options) (*app.App, error)

var (
	opts        Options
	build       Builder
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "vupp",
	Short: "WhatsVUpp terminal chat client",
	Long: `vupp is a terminal client for the WhatsVUpp chat server.

Without a sub-command it opens the chat when you are logged in and the
login screen otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		application, err = build(cmd.Context(), opts)

		return err
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.Run(cmd.Context(), router.Root)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and open the chat",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, password, err := credentialFlags(cmd)
		if err != nil {
			return err
		}

		if username != "" && password != "" {
			application.WithCredentials(username, password, "")
		}

		return application.Run(cmd.Context(), router.Login)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account, then log in",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, password, err := credentialFlags(cmd)
		if err != nil {
			return err
		}

		confirm, err := cmd.Flags().GetString("confirm")
		if err != nil {
			return err
		}

		if username != "" && password != "" {
			application.WithCredentials(username, password, confirm)
		}

		return application.Run(cmd.Context(), router.Register)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.Run(cmd.Context(), router.Chat)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.Logout(cmd.Context())
	},
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Print every message once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.PrintMessages(cmd.Context())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, err := application.WhoAmI()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), username)

		return nil
	},
}

func credentialFlags(cmd *cobra.Command) (string, string, error) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return "", "", err
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(b Builder) {
	build = b

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	closer.CloseAll()
	closer.Wait()

	if err != nil {
		if application != nil {
			logger.Error("command failed", zap.Error(err))
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", ".env", "path to the .env config file")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "also write logs to stderr")

	rootCmd.AddCommand(loginCmd, registerCmd, chatCmd, logoutCmd, messagesCmd, whoamiCmd)

	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringP("username", "u", "", "Username")
		cmd.Flags().StringP("password", "p", "", "Password")
	}
	registerCmd.Flags().StringP("confirm", "c", "", "Password confirmation")
}
