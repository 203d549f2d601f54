package errkind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorClassification_IsRetryable(t *testing.T) {
	tests := []struct {
		name           string
		classification ErrorClassification
		want           bool
	}{
		{
			name:           "retryable classification",
			classification: ClassificationRetryable,
			want:           true,
		},
		{
			name:           "permanent classification",
			classification: ClassificationPermanent,
			want:           false,
		},
		{
			name:           "unknown classification",
			classification: ErrorClassification("UNKNOWN"),
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.classification.IsRetryable()
			require.Equal(t, tt.want, got)
		})
	}
}

func TestErrorKind_Classification(t *testing.T) {
	retryable := map[ErrorKind]bool{
		KindResourceTimeout:         true,
		KindResourceBusy:            true,
		KindNetworkTimeout:          true,
		KindNetworkConnectionFailed: true,
		KindNetworkRequestFailed:    true,
		KindUnavailable:             true,
	}

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			want := ClassificationPermanent
			if retryable[kind] {
				want = ClassificationRetryable
			}
			require.Equal(t, want, kind.Classification())
			require.Equal(t, retryable[kind], kind.IsRetryable())
		})
	}
}

func TestErrorKind_Classification_SafeDefault(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
	}{
		{"ok", KindOK},
		{"unknown error", KindUnknownError},
		{"unassigned code", ErrorKind(43)},
		{"negative", ErrorKind(-40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, ClassificationPermanent, tt.kind.Classification())
			require.False(t, tt.kind.IsRetryable())
		})
	}
}
