// Package logging provides structured logging for hubdeck.
//
// It wraps log/slog with a JSON handler. Records go to {dir}/debug.log, or to
// stderr when no directory is configured:
//
//	logger, err := logging.NewLogger(config.ConfigDir(), "DEBUG")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithColumn("col-1").WithCategory("unread").Debug("category toggled", "open", true)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"category toggled","column_id":"col-1","category":"unread","open":true}
//
// Use [NopLogger] in tests.
package logging
