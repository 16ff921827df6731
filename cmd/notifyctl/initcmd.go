package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notifyctl/notifyctl/config"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with defaults",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	fmt.Printf("Configuration initialized at: %s\n", path)
	fmt.Println("Please edit the configuration file to add your webhook URLs.")
	return nil
}
