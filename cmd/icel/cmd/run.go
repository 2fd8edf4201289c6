package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coxioxi/icel/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <datei> [datei...]",
	Short: "Führt Ausdrucksdateien aus",
	Long: `Führt eine oder mehrere Dateien mit ICEL-Ausdrücken aus.

Jede nicht-leere Zeile wird als eigener Ausdruck ausgewertet. Alle
Zeilen einer Datei teilen sich dieselbe Sitzung, Zuweisungen bleiben
also für spätere Zeilen sichtbar. Fehlerhafte Zeilen werden gemeldet,
die Verarbeitung läuft danach weiter. Nach jeder Datei werden die
belegten Variablen ausgegeben.

Endet mit Exit-Code 1, wenn mindestens eine Zeile oder Datei
fehlschlägt.

Beispiele:
  icel run rechnung.icel
  icel run basis.icel aufbau.icel
  icel run --verbose rechnung.icel`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	engine, _, err := setupEngine(os.Stderr)
	if err != nil {
		return err
	}
	defer engine.Close()

	r, err := runner.New(runner.Options{
		Engine: engine,
		Output: os.Stdout,
	})
	if err != nil {
		return err
	}

	return r.ProcessFiles(cmd.Context(), args)
}
