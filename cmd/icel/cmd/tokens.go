package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coxioxi/icel/foundation/icel/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [ausdruck]",
	Short: "Zeigt die Token eines Ausdrucks",
	Long: `Zerlegt einen Ausdruck in seine lexikalischen Token und gibt sie
als Tabelle aus. Nützlich, um Scanner-Probleme zu untersuchen: auch
unbekannte Zeichen und zu große Zahlen erscheinen als ILLEGAL- bzw.
INT_RANGE-Token statt als Fehler.

Beispiele:
  icel tokens "2 + 3 * 4"
  icel tokens "x = y <= 10 ? 1 : 0"
  echo "7 § 3" | icel tokens`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := getInputExpression(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("kein Ausdruck angegeben")
	}

	tokens := parser.TokenizeInput(source)

	fmt.Printf("%-4s %-12s %-12s %s\n", "NR", "TYP", "WERT", "POSITION")
	for i, tok := range tokens {
		if tok.Type == parser.TokenEOF {
			break
		}
		fmt.Printf("%-4d %-12s %-12s %d:%d\n", i+1, tok.Type, tok.Value, tok.Line, tok.Column)
	}

	return nil
}
