package errkind_test

import (
	"encoding/json"
	"testing"

	"github.com/jmgilman/go/errkind"
)

func BenchmarkString(b *testing.B) {
	kinds := errkind.Kinds()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kinds[i%len(kinds)].String()
	}
}

func BenchmarkString_Fallback(b *testing.B) {
	kind := errkind.ErrorKind(7)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kind.String()
	}
}

func BenchmarkParseKind(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = errkind.ParseKind("NETWORK_CONNECTION_FAILED")
	}
}

func BenchmarkCategory(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errkind.KindPermissionDenied.Category()
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(errkind.KindResourceTimeout)
	}
}

func BenchmarkUnmarshalJSON(b *testing.B) {
	data := []byte("23")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var kind errkind.ErrorKind
		_ = json.Unmarshal(data, &kind)
	}
}
