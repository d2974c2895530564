package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/notes-app/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// config lookups are not interesting for a one-shot command
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Administrative commands of the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log))

	if err := root.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
