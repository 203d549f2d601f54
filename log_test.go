package errkind

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKind_LogValue(t *testing.T) {
	value := KindResourceBusy.LogValue()
	require.Equal(t, slog.KindGroup, value.Kind())

	attrs := value.Group()
	require.Len(t, attrs, 2)
	require.Equal(t, LogFieldCode, attrs[0].Key)
	require.Equal(t, int64(24), attrs[0].Value.Int64())
	require.Equal(t, LogFieldLabel, attrs[1].Key)
	require.Equal(t, "RESOURCE_BUSY", attrs[1].Value.String())
}

func TestErrorKind_LogValue_Fallback(t *testing.T) {
	attrs := ErrorKind(7).LogValue().Group()
	require.Equal(t, int64(7), attrs[0].Value.Int64())
	require.Equal(t, FallbackLabel, attrs[1].Value.String())
}

func TestErrorKind_LogValue_Handler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Error("load failed", "kind", KindResourceLoadFailed)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	kind, ok := record["kind"].(map[string]interface{})
	require.True(t, ok, "kind should be logged as a group")
	require.Equal(t, float64(21), kind[LogFieldCode])
	require.Equal(t, "RESOURCE_LOAD_FAILED", kind[LogFieldLabel])
}
