package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackguides/internal/config"
	"stackguides/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new site with an interactive wizard",
	Long:  `Runs an interactive wizard, writes a .stackguides.yml config file, and scaffolds the content directory with starter guides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)

		scaffold, _ := cmd.Flags().GetBool("scaffold")
		if scaffold {
			if err := content.WriteStarter(cfg.ContentDir); err != nil {
				return fmt.Errorf("scaffolding content: %w", err)
			}
			fmt.Printf("Scaffolded starter guides in %s/\n", cfg.ContentDir)
		}

		fmt.Println("Run `stackguides serve` to start the server.")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("scaffold", true, "write starter content into the content directory")
	rootCmd.AddCommand(initCmd)
}
