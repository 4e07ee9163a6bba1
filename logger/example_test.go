package logger_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
	"github.com/philipp01105/logcore/handler"
	"github.com/philipp01105/logcore/logger"
	"github.com/philipp01105/logcore/settings"
)

type Server struct{}

// Loggers are looked up per type and dispatch through the given settings.
func Example() {
	s := settings.New()
	_ = s.SetSeverity(core.Info)
	_ = s.Handlers().Replace(handler.NewTraceHandlerWithFormatter(os.Stdout, formatter.NewMessageFormatter()))

	log := logger.NewRegistry(s).GetLogger(Server{})
	log.Debug("not shown")
	log.Info("listening on {0}", ":8080")
	log.Error("{0} of {1} workers failed", 2, 8)
	// Output:
	// listening on :8080
	// 2 of 8 workers failed
}

// A memory handler is convenient for asserting on log output.
func ExampleLogger_Critical() {
	s := settings.New()
	mem := handler.NewMemoryHandler(0)
	_ = s.Handlers().Replace(mem)

	log := logger.NewRegistry(s).GetLogger(Server{})
	log.Critical("This is a {0} message", "Critical")

	e := mem.Entries()[0]
	fmt.Println(e.Severity, e.TypeName, e.Message)
	// Output:
	// CRITICAL github.com/philipp01105/logcore/logger_test.Server This is a Critical message
}

// Profile closes the profiler however fn returns.
func ExampleLogger_Profile() {
	s := settings.New()
	_ = s.SetSeverity(core.Debug)
	mem := handler.NewMemoryHandler(0)
	_ = s.Handlers().Replace(mem)

	log := logger.NewRegistry(s).GetLogger(Server{})
	_ = log.Profile("import", func(p *logger.Profiler) error {
		p.Info("read {0} rows", 42)
		return nil
	})

	fmt.Println(mem.Len(), mem.Messages()[0])
	// Output:
	// 3 import START
}

// Route log/slog through the same handlers.
func ExampleNewSlog() {
	s := settings.New()
	_ = s.SetSeverity(core.Info)
	_ = s.Handlers().Replace(handler.NewTraceHandlerWithFormatter(os.Stdout, formatter.NewMessageFormatter()))

	sl := logger.NewSlog(logger.NewRegistry(s).GetLogger(Server{}))
	sl.Info("request", "method", "GET", "status", 200)
	// Output:
	// request method=GET status=200
}
