package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name] [prompt]",
	Short: "Switch to a profile and send a prompt",
	Long:  `Switch to the specified profile, save it as active and immediately send a prompt.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		prompt := strings.Join(args[1:], " ")
		if strings.TrimSpace(prompt) == "" {
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

func init() {
	rootCmd.AddCommand(useCmd)
}
