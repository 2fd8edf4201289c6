package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	"github.com/coxioxi/icel/foundation/icel"
	"github.com/coxioxi/icel/foundation/icel/ast"
	"github.com/coxioxi/icel/foundation/utils/mathx"
)

var (
	evalShowAST bool
	evalEnvVars []string
)

var evalCmd = &cobra.Command{
	Use:   "eval [ausdruck]",
	Short: "Wertet einen Ausdruck aus",
	Long: `Wertet einen einzelnen ICEL-Ausdruck aus und gibt das Ergebnis aus.

Bei einem Fehler endet der Befehl mit Exit-Code 1.

Beispiele:
  icel eval "2 + 3 * 4"
  icel eval --ast "(1 + 2) * 3"
  icel eval --env x=10 --env y=4 "x % y"
  echo "2 ^ 16" | icel eval`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalShowAST, "ast", false, "Syntaxbaum vor dem Ergebnis ausgeben")
	evalCmd.Flags().StringArrayVar(&evalEnvVars, "env", nil, "Variable vorbelegen (name=wert, mehrfach möglich)")
}

func runEval(cmd *cobra.Command, args []string) error {
	source, err := getInputExpression(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("kein Ausdruck angegeben")
	}

	engine, _, err := setupEngine(os.Stderr)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := seedVariables(engine, evalEnvVars); err != nil {
		return err
	}

	result, err := engine.Evaluate(cmd.Context(), source)
	if err != nil {
		return formatEvalError(err)
	}

	if evalShowAST {
		printer := ast.NewStringVisitor()
		result.Tree.Accept(printer)
		fmt.Print(printer.String())
	}
	fmt.Println(result.Value)

	return nil
}

// seedVariables preseeds the engine session from --env name=wert pairs
func seedVariables(engine *icel.Engine, pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("ungültige Variablendefinition %q (erwartet: name=wert)", pair)
		}

		name = strings.TrimSpace(name)
		parsed, err := mathx.ParseInt64(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("ungültiger Wert für %q: %v", name, err)
		}

		if err := engine.Session().Define(name, parsed); err != nil {
			return fmt.Errorf("ungültiger Variablenname %q: Variablen bestehen aus Buchstaben", name)
		}
	}

	return nil
}

// formatEvalError labels engine errors by their class for CLI output
func formatEvalError(err error) error {
	switch {
	case icelerror.IsParseError(err):
		return fmt.Errorf("Parse-Fehler: %v", err)
	case icelerror.IsEvalError(err):
		return fmt.Errorf("Laufzeitfehler: %v", err)
	default:
		return err
	}
}

// getInputExpression reads the expression from piped stdin when
// available, otherwise from the command arguments
func getInputExpression(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}

	return strings.Join(args, " "), nil
}
