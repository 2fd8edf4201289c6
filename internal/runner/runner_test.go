package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel"
)

func quietLogger() *icellog.Logger {
	return icellog.New().WithLevel(icellog.LevelFatal)
}

// newTestRunner builds a runner writing into a buffer so tests can
// check the exact report format.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	engine, err := icel.NewEngine(icel.Options{
		Logger:      quietLogger(),
		LogLevel:    icellog.LevelFatal,
		EnableCache: true,
	})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(engine.Close)

	var buf bytes.Buffer
	r, err := New(Options{
		Engine: engine,
		Output: &buf,
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return r, &buf
}

// writeExprFile writes file content into a temp dir and returns the path.
func writeExprFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write expression file: %v", err)
	}

	return path
}

func TestNew(t *testing.T) {
	t.Run("requires engine", func(t *testing.T) {
		_, err := New(Options{})
		if err == nil {
			t.Fatal("New() error = nil, want error for missing engine")
		}
		if !icelerror.HasCode(err, icelerror.CodeInvalidInput) {
			t.Errorf("error code = %v, want CodeInvalidInput", icelerror.GetCode(err))
		}
	})

	t.Run("defaults output and logger", func(t *testing.T) {
		engine, err := icel.NewEngine(icel.Options{
			Logger:      quietLogger(),
			LogLevel:    icellog.LevelFatal,
			EnableCache: false,
		})
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		defer engine.Close()

		r, err := New(Options{Engine: engine})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if r.out == nil {
			t.Error("out = nil, want default output")
		}
		if r.logger == nil {
			t.Error("logger = nil, want default logger")
		}
	})
}

func TestRunner_ProcessFile(t *testing.T) {
	t.Run("report format", func(t *testing.T) {
		r, buf := newTestRunner(t)
		path := writeExprFile(t, "basics.icel", "width = 10\narea = width * 2\n\nwidth + area\n")

		outcomes, err := r.ProcessFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}

		want := fmt.Sprintf("\n--- Processing file: %s ---\n", path) +
			"\nExpression: width = 10\nResult: 10\n" +
			"\nExpression: area = width * 2\nResult: 20\n" +
			"\nExpression: width + area\nResult: 30\n" +
			"\nVariables:\narea = 20\nwidth = 10\n"
		if got := buf.String(); got != want {
			t.Errorf("report = %q, want %q", got, want)
		}

		if len(outcomes) != 3 {
			t.Fatalf("len(outcomes) = %d, want 3 (blank line skipped)", len(outcomes))
		}
		wantOutcomes := []Outcome{
			{Line: 1, Expression: "width = 10", Value: 10},
			{Line: 2, Expression: "area = width * 2", Value: 20},
			{Line: 4, Expression: "width + area", Value: 30},
		}
		for i, want := range wantOutcomes {
			got := outcomes[i]
			if got.Line != want.Line || got.Expression != want.Expression ||
				got.Value != want.Value || got.Err != nil {
				t.Errorf("outcomes[%d] = %+v, want %+v", i, got, want)
			}
		}
	})

	t.Run("parse error does not stop the file", func(t *testing.T) {
		r, buf := newTestRunner(t)
		path := writeExprFile(t, "broken.icel", "2 +\n1 + 2\n")

		outcomes, err := r.ProcessFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}

		if len(outcomes) != 2 {
			t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
		}
		if outcomes[0].Err == nil {
			t.Error("outcomes[0].Err = nil, want parse error")
		}
		if !icelerror.IsParseError(outcomes[0].Err) {
			t.Errorf("outcomes[0].Err code = %v, want parse class", icelerror.GetCode(outcomes[0].Err))
		}
		if outcomes[1].Value != 3 {
			t.Errorf("outcomes[1].Value = %d, want 3", outcomes[1].Value)
		}

		out := buf.String()
		if !strings.Contains(out, path+":1: parse error:") {
			t.Errorf("report missing file:line parse diagnostic:\n%s", out)
		}
		if !strings.Contains(out, "Result: 3") {
			t.Errorf("report missing result of the following line:\n%s", out)
		}
	})

	t.Run("runtime error does not stop the file", func(t *testing.T) {
		r, buf := newTestRunner(t)
		path := writeExprFile(t, "runtime.icel", "1 / 0\n5 % 0\n2 + 3\n")

		outcomes, err := r.ProcessFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}

		if len(outcomes) != 3 {
			t.Fatalf("len(outcomes) = %d, want 3", len(outcomes))
		}
		for i := 0; i < 2; i++ {
			if !icelerror.IsEvalError(outcomes[i].Err) {
				t.Errorf("outcomes[%d].Err = %v, want eval class", i, outcomes[i].Err)
			}
		}
		if outcomes[2].Value != 5 {
			t.Errorf("outcomes[2].Value = %d, want 5", outcomes[2].Value)
		}

		out := buf.String()
		if !strings.Contains(out, path+":1: runtime error:") {
			t.Errorf("report missing runtime diagnostic for line 1:\n%s", out)
		}
		if !strings.Contains(out, path+":2: runtime error:") {
			t.Errorf("report missing runtime diagnostic for line 2:\n%s", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r, buf := newTestRunner(t)
		path := filepath.Join(t.TempDir(), "missing.icel")

		outcomes, err := r.ProcessFile(context.Background(), path)
		if err == nil {
			t.Fatal("ProcessFile() error = nil, want error for missing file")
		}
		if !icelerror.HasCode(err, icelerror.CodeFileNotFound) {
			t.Errorf("error code = %v, want CodeFileNotFound", icelerror.GetCode(err))
		}
		if outcomes != nil {
			t.Errorf("outcomes = %v, want nil", outcomes)
		}

		out := buf.String()
		if !strings.Contains(out, fmt.Sprintf("Error: file '%s' not found.", path)) {
			t.Errorf("report missing not-found message:\n%s", out)
		}
		if strings.Contains(out, "Variables:") {
			t.Errorf("report lists variables for unreadable file:\n%s", out)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		r, _ := newTestRunner(t)
		path := writeExprFile(t, "slow.icel", "1 + 1\n2 + 2\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcomes, err := r.ProcessFile(ctx, path)
		if err == nil {
			t.Fatal("ProcessFile() error = nil, want context error")
		}
		if !icelerror.HasCode(err, icelerror.CodeTimeout) {
			t.Errorf("error code = %v, want CodeTimeout", icelerror.GetCode(err))
		}
		if len(outcomes) != 0 {
			t.Errorf("len(outcomes) = %d, want 0", len(outcomes))
		}
	})

	t.Run("variables listed even when empty", func(t *testing.T) {
		r, buf := newTestRunner(t)
		path := writeExprFile(t, "stateless.icel", "1 + 2\n")

		if _, err := r.ProcessFile(context.Background(), path); err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}

		if !strings.HasSuffix(buf.String(), "\nVariables:\n") {
			t.Errorf("report should end with empty variables section:\n%s", buf.String())
		}
	})
}

func TestRunner_ProcessFiles(t *testing.T) {
	t.Run("session shared across files", func(t *testing.T) {
		r, buf := newTestRunner(t)
		first := writeExprFile(t, "first.icel", "base = 5\n")
		second := writeExprFile(t, "second.icel", "base * 3\n")

		if err := r.ProcessFiles(context.Background(), []string{first, second}); err != nil {
			t.Fatalf("ProcessFiles() error = %v", err)
		}

		if !strings.Contains(buf.String(), "Result: 15") {
			t.Errorf("second file did not see bindings of the first:\n%s", buf.String())
		}
	})

	t.Run("continues past missing file and reports failures", func(t *testing.T) {
		r, buf := newTestRunner(t)
		missing := filepath.Join(t.TempDir(), "missing.icel")
		broken := writeExprFile(t, "broken.icel", "2 +\n")
		good := writeExprFile(t, "good.icel", "6 * 7\n")

		err := r.ProcessFiles(context.Background(), []string{missing, broken, good})
		if err == nil {
			t.Fatal("ProcessFiles() error = nil, want aggregated error")
		}
		if !icelerror.HasCode(err, icelerror.CodeInvalidInput) {
			t.Errorf("error code = %v, want CodeInvalidInput", icelerror.GetCode(err))
		}
		if !strings.Contains(err.Error(), "2 error(s)") {
			t.Errorf("error = %v, want 2 counted failures", err)
		}

		if !strings.Contains(buf.String(), "Result: 42") {
			t.Errorf("later file was not processed:\n%s", buf.String())
		}
	})

	t.Run("clean run returns nil", func(t *testing.T) {
		r, _ := newTestRunner(t)
		path := writeExprFile(t, "fine.icel", "x = 2\nx ^ 10\n")

		if err := r.ProcessFiles(context.Background(), []string{path}); err != nil {
			t.Errorf("ProcessFiles() error = %v, want nil", err)
		}
	})

	t.Run("cancelled context stops remaining files", func(t *testing.T) {
		r, buf := newTestRunner(t)
		first := writeExprFile(t, "first.icel", "1 + 1\n")
		second := writeExprFile(t, "second.icel", "2 + 2\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.ProcessFiles(ctx, []string{first, second})
		if err == nil {
			t.Fatal("ProcessFiles() error = nil, want context error")
		}
		if !icelerror.HasCode(err, icelerror.CodeTimeout) {
			t.Errorf("error code = %v, want CodeTimeout", icelerror.GetCode(err))
		}
		if strings.Contains(buf.String(), "second.icel ---") {
			t.Errorf("second file was processed after cancellation:\n%s", buf.String())
		}
	})
}
