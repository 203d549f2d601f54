package errkind

import "log/slog"

// Log attribute keys used by LogValue.
const (
	LogFieldCode  = "code"  // int - integer value of the kind
	LogFieldLabel = "label" // string - canonical label
)

// LogValue implements slog.LogValuer.
// A kind is logged as a group carrying both its code and its label:
//
//	logger.Error("load failed", "kind", errkind.KindResourceBusy)
//	// kind.code=24 kind.label=RESOURCE_BUSY
func (k ErrorKind) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int(LogFieldCode, int(k)),
		slog.String(LogFieldLabel, k.String()),
	)
}
