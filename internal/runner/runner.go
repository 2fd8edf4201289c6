// Package runner executes files of ICEL expressions line by line
// against a shared engine session.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel"
	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Outcome records the result of a single expression line.
type Outcome struct {
	// Line is the 1-based line number in the source file
	Line int

	// Expression is the trimmed expression text
	Expression string

	// Value is the evaluated result when Err is nil
	Value int64

	// Err is the parse or evaluation error for this line, nil on success
	Err error
}

// Options configures a Runner.
type Options struct {
	// Engine evaluates the expressions (required)
	Engine *icel.Engine

	// Output receives the processing report (default: os.Stdout)
	Output io.Writer

	// Logger for runner diagnostics
	Logger *icellog.Logger
}

// Runner executes expression files. All files processed by one runner
// share the engine's session, so assignments carry over between lines
// and between files.
type Runner struct {
	engine *icel.Engine
	out    io.Writer
	logger *icellog.Logger
}

// New creates a runner backed by the given engine.
func New(opts Options) (*Runner, error) {
	if opts.Engine == nil {
		return nil, icelerror.New("runner requires an engine").
			WithCode(icelerror.CodeInvalidInput).
			WithOperation("runner.New")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = icellog.GetDefault()
	}

	return &Runner{
		engine: opts.Engine,
		out:    opts.Output,
		logger: opts.Logger.WithField("component", "icel-runner"),
	}, nil
}

// ProcessFile evaluates every non-blank line of the named file in
// order and writes a report to the runner's output. Faulty lines are
// reported with their file position and skipped, so one bad line does
// not stop the file. After the last line the current variable bindings
// are listed. The returned outcomes mirror the report line by line.
func (r *Runner) ProcessFile(ctx context.Context, path string) ([]Outcome, error) {
	fmt.Fprintf(r.out, "\n--- Processing file: %s ---\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.out, "Error: file '%s' not found.\n", path)
		return nil, icelerror.Wrap(err, "cannot read expression file").
			WithCode(icelerror.CodeFileNotFound).
			WithOperation("runner.ProcessFile").
			WithDetail("path", path)
	}

	r.logger.Info("processing expression file", icellog.Fields{
		"path": path,
		"size": len(data),
	})

	var outcomes []Outcome
	for i, raw := range icelstringx.SplitLines(string(data)) {
		if err := ctx.Err(); err != nil {
			return outcomes, icelerror.Wrap(err, "file processing aborted").
				WithCode(icelerror.CodeTimeout).
				WithOperation("runner.ProcessFile").
				WithDetail("path", path)
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lineNo := i + 1
		fmt.Fprintf(r.out, "\nExpression: %s\n", line)

		result, evalErr := r.engine.Evaluate(ctx, line)
		if evalErr != nil {
			r.reportLineError(path, lineNo, evalErr)
			outcomes = append(outcomes, Outcome{
				Line:       lineNo,
				Expression: line,
				Err:        evalErr,
			})
			continue
		}

		fmt.Fprintf(r.out, "Result: %d\n", result.Value)
		outcomes = append(outcomes, Outcome{
			Line:       lineNo,
			Expression: line,
			Value:      result.Value,
		})
	}

	r.printVariables()

	return outcomes, nil
}

// ProcessFiles runs ProcessFile for each path in order. Processing
// continues through unreadable files and faulty lines; the returned
// error summarizes how many problems occurred, or is nil when every
// line of every file evaluated cleanly.
func (r *Runner) ProcessFiles(ctx context.Context, paths []string) error {
	var failed int

	for _, path := range paths {
		outcomes, err := r.ProcessFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			failed++
			continue
		}

		for _, outcome := range outcomes {
			if outcome.Err != nil {
				failed++
			}
		}
	}

	if failed > 0 {
		return icelerror.Newf("file processing finished with %d error(s)", failed).
			WithCode(icelerror.CodeInvalidInput).
			WithOperation("runner.ProcessFiles").
			WithDetail("failed", failed).
			WithDetail("files", len(paths))
	}

	return nil
}

// reportLineError writes a file:line diagnostic classified by error
// kind, matching compiler-style output so editors can jump to the line.
func (r *Runner) reportLineError(path string, lineNo int, err error) {
	switch {
	case icelerror.IsParseError(err):
		fmt.Fprintf(r.out, "%s:%d: parse error: %v\n", path, lineNo, err)
	case icelerror.IsEvalError(err):
		fmt.Fprintf(r.out, "%s:%d: runtime error: %v\n", path, lineNo, err)
	default:
		fmt.Fprintf(r.out, "%s:%d: error: %v\n", path, lineNo, err)
	}

	r.logger.Warn("expression line failed", icellog.Fields{
		"path":  path,
		"line":  lineNo,
		"error": err.Error(),
	})
}

// printVariables lists the session bindings in sorted name order.
func (r *Runner) printVariables() {
	session := r.engine.Session()

	fmt.Fprintf(r.out, "\nVariables:\n")
	for _, name := range session.Names() {
		fmt.Fprintf(r.out, "%s = %d\n", name, session.Get(name))
	}
}
