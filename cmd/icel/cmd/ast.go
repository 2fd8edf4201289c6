package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coxioxi/icel/foundation/icel/ast"
	"github.com/coxioxi/icel/foundation/icel/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [ausdruck]",
	Short: "Zeigt den Syntaxbaum eines Ausdrucks",
	Long: `Parst einen Ausdruck und gibt den Syntaxbaum eingerückt aus,
ohne ihn auszuwerten. Damit lässt sich prüfen, wie Vorrang und
Assoziativität einen Ausdruck gruppieren.

Beispiele:
  icel ast "2 + 3 * 4"
  icel ast "a = b = 1 + 2"
  icel ast "x <= 10 ? x : 10"`,
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := getInputExpression(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("kein Ausdruck angegeben")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, _ := newLogger(cfg, os.Stderr)

	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: cfg.GetInt("engine.max_expression_length", 4096),
	})
	if err != nil {
		return err
	}

	tree, err := p.Parse(source)
	if err != nil {
		return formatEvalError(err)
	}

	printer := ast.NewStringVisitor()
	tree.Accept(printer)
	fmt.Print(printer.String())

	return nil
}
