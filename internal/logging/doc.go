// Package logging sets up log/slog for palmdev-prep.
//
// Levels follow the -v count (see [LevelFromVerbosity]): warnings only by
// default, then info, debug, and [LevelTrace] for per-entry scan detail.
// Text output goes through [Handler], which colors terminals according to
// the --color mode; --log-format json and --log-file use slog's JSON handler
// via [NewFormatHandler], fanned out with [MultiHandler].
//
// Commands attach the logger to their context and library code fetches it
// back:
//
//	ctx = logging.NewContext(ctx, logger)
//	...
//	logging.FromContext(ctx).Debug("scanning", "dir", dir)
//
// Tests use [ForTest] so output lands in t.Log.
package logging
