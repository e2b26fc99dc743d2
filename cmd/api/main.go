// Command petcare sirve la API de PetCare Hub y expone utilidades de línea de comandos.
package main

import (
	"fmt"
	"os"

	"petcare-hub/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configFile se setea con --config.
	configFile string

	// v acumula defaults, env, archivo y flags.
	v = config.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "petcare",
	Short: "PetCare Hub API server",
	Long: `PetCare Hub sirve la API de mascotas, vacunas, adopción, tienda,
entrenamiento, perdidos y encontrados, comunidad y grooming.

Sin subcomando arranca el servidor (igual que "petcare serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml); env PETCARE_* overrides")
	rootCmd.PersistentFlags().String("log-level", "", "debug | info | warn | error")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(vaccineDueCmd)
}
