// Package logging provides a minimal logging facade for ecpoint consumers.
//
// The Logger interface wraps the subset of log/slog used by the registry and
// the ecpoint command. Applications may supply their own implementation for
// testing or to route records into an existing logging system.
//
//	logger := logging.New(nil) // slog.Default()
//	reg := ecpoint.NewRegistry(cfg, ecpoint.WithLogger(logger))
//
// The codec never logs. Decode and encode failures are returned to the
// caller, which decides whether a malformed peer key is worth recording.
// Peer key material is public, but raw buffers from an untrusted peer should
// still be logged with Redacted rather than verbatim.
package logging
