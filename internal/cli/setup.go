package cli

import (
	"errors"
	"log/slog"
	"os"

	"dotdb/internal/config"
	"dotdb/internal/store"
	"dotdb/internal/value"
)

// openStore resolves configuration and opens the configured backend.
func openStore(opts *RootOptions) (*store.Store, *config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	level := cfg.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var backend store.Backend
	switch cfg.Backend {
	case "sqlite":
		backend, err = store.OpenSQLite(cfg.SQLite.Path)
	default:
		backend, err = store.OpenFile(cfg.File.Path, logger)
	}
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open backend", err)
	}

	return store.New(backend, store.WithLogger(logger)), cfg, nil
}

// parseValue decodes a command-line argument as JSON, falling back to a
// plain string when it is not valid JSON: `21` is a number, `"x"` and
// `hello` are strings, `{"a":1}` is an object.
func parseValue(raw string) value.Value {
	if v, err := value.Unmarshal([]byte(raw)); err == nil {
		return v
	}
	return value.String(raw)
}

// payload converts a result value into the formatter's success payload:
// decoded Go types for JSON output, canonical JSON text otherwise.
func payload(format string, v value.Value) (any, error) {
	if format == "json" {
		return value.ToAny(v), nil
	}
	data, err := value.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// reportOpError emits a structured error (JSON format only; text users get
// the message via the process exit path) and maps the failure to an exit
// code: medium and connection failures are command errors, everything else
// is an operation failure.
func reportOpError(out *OutputFormatter, err error) error {
	code := "UNKNOWN"
	var oe *store.OpError
	if errors.As(err, &oe) {
		code = string(oe.Code)
	}
	if out.Format == "json" {
		_ = out.Error(code, err.Error())
	}

	exit := ExitFailure
	if store.IsMediumFailure(err) || store.IsNotConnected(err) {
		exit = ExitCommandError
	}
	return &ExitError{Code: exit, Message: "operation failed", Err: err}
}
