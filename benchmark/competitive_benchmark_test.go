package benchmark

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
	"github.com/philipp01105/logcore/handler"
	"github.com/philipp01105/logcore/logger"
)

type service struct{}

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newLogcoreLogger returns a logcore logger that writes JSON to w.
func newLogcoreLogger(w io.Writer) *logger.Logger {
	h := handler.NewTraceHandlerWithFormatter(w, formatter.NewJSONFormatter(formatter.Config{}))
	return logger.NewRegistry(newSettings(core.Debug, h)).GetLogger(service{})
}

func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

func newSlogLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – plain message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("logcore", func(b *testing.B) {
		l := newLogcoreLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – message with two interpolated values
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Interpolated(b *testing.B) {
	b.Run("logcore", func(b *testing.B) {
		l := newLogcoreLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user {0} logged in after {1} attempts", "alice", 3)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in after %d attempts", "alice", 3)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in after %d attempts", "alice", 3)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("user %s logged in after %d attempts", "alice", 3)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – call below the threshold
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Disabled(b *testing.B) {
	b.Run("logcore", func(b *testing.B) {
		h := handler.NewTraceHandler(io.Discard)
		l := logger.NewRegistry(newSettings(core.Error, h)).GetLogger(service{})
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug {0}", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard).WithOptions(zap.IncreaseLevel(zap.ErrorLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug", zap.Int("i", i))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug", "i", i)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard).Level(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Int("i", i).Msg("debug")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – parallel callers
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("logcore", func(b *testing.B) {
		l := newLogcoreLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – real file output
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	open := func(b *testing.B, name string) *os.File {
		f, err := os.Create(filepath.Join(b.TempDir(), name))
		if err != nil {
			b.Fatal(err)
		}
		b.Cleanup(func() { _ = f.Close() })
		return f
	}

	b.Run("logcore", func(b *testing.B) {
		h, err := handler.NewFileHandler(handler.FileConfig{
			Filename:  filepath.Join(b.TempDir(), "logcore.log"),
			Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		})
		if err != nil {
			b.Fatal(err)
		}
		defer h.Close()
		l := logger.NewRegistry(newSettings(core.Debug, h)).GetLogger(service{})
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(open(b, "zap.log"))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(open(b, "zerolog.log"))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("file message")
		}
	})
}
