package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coxioxi/icel/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"interactive", "shell"},
	Short:   "Startet die interaktive Sitzung",
	Long: `Startet eine interaktive ICEL-Sitzung im Terminal.

Eingegebene Ausdrücke werden sofort ausgewertet, Zuweisungen bleiben
für die gesamte Sitzung erhalten. Vor jedem Ergebnis wird der
Syntaxbaum angezeigt (abschaltbar mit :ast off).

Befehle:
  :vars        Belegte Variablen anzeigen
  :clear       Alle Variablen löschen
  :ast on|off  Syntaxbaum-Anzeige umschalten
  :help        Hilfe anzeigen
  :quit        Sitzung beenden

Tastenkürzel:
  Enter       Ausdruck auswerten
  ↑/↓         Eingabe-Historie durchblättern
  PgUp/PgDn   Ausgabe scrollen
  Ctrl+C      Beenden`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	// Bubbletea owns the terminal, so verbose logs go to a file
	// instead of stderr.
	logOut := io.Writer(os.Stderr)
	if verbose {
		f, err := os.OpenFile("icel-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("Debug-Log kann nicht geöffnet werden: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	engine, cfg, err := setupEngine(logOut)
	if err != nil {
		return err
	}
	defer engine.Close()

	return repl.Run(repl.Config{
		Engine:      engine,
		Prompt:      cfg.GetString("repl.prompt", "calc> "),
		ShowAST:     cfg.GetBool("repl.show_ast", true),
		HistorySize: cfg.GetInt("repl.history_size", 100),
	})
}
