// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes taken from context.Context.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "namegen"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "names generated", logger.Preset("greek"), logger.Count(10))
//
// The attribute helpers in attr.go keep key names consistent across the
// service. Error and RequestID return an empty Attr for zero values, so
// callers need no nil checks.
package logger
