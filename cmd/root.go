package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/app"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/logging"
	"github.com/Rorical/RoriChat/internal/models"
)

const defaultPrompt = "What's the weather in Paris?"

var (
	profileFlag string
	modelFlag   string
	tuiFlag     bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "rorichat [prompt]",
	Short: "Chat client with local tool calling",
	Long: `RoriChat sends a prompt to a chat backend with a catalog of local tools.
If the model asks for a tool, RoriChat runs it and sends the result back for a final answer.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		prompt := strings.Join(args, " ")
		if strings.TrimSpace(prompt) == "" {
			var err error
			prompt, err = askPrompt()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if err := runPrompt(cmd.Context(), prompt); err != nil {
			log.Fatalf("Chat failed: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile to use instead of the active one")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug output to stderr")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "override the profile's model for this run")
	rootCmd.Flags().BoolVar(&tuiFlag, "tui", false, "show progress and the full transcript in a terminal view")

	rootCmd.AddCommand(profileCmd)
}

func askPrompt() (string, error) {
	prompt := promptui.Prompt{
		Label:   "Prompt",
		Default: defaultPrompt,
	}
	return prompt.Run()
}

// loadProfile returns the profile selected by --profile, or the active one
func loadProfile() (*config.Config, config.Profile, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, config.Profile{}, err
	}

	if profileFlag != "" {
		if err := cfg.UseProfile(profileFlag); err != nil {
			return nil, config.Profile{}, err
		}
	}
	return cfg, cfg.Current(), nil
}

func newApplication() (*app.Application, error) {
	_, profile, err := loadProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(verboseFlag)
	return app.NewApplication(profile, models.ChatOptions{Model: modelFlag}, logger)
}

func runPrompt(ctx context.Context, prompt string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}

	var result *core.Result
	if tuiFlag {
		result, err = application.RunInteractive(ctx, prompt)
	} else {
		result, err = application.Ask(ctx, prompt)
	}
	if err != nil {
		return err
	}

	fmt.Println("Response:", result.Final.Content)
	return nil
}
