package testutils

import (
	"os"
	"strings"
	"testing"
)

// UnsetEnvPrefix unsets environment variables beginning with prefix for the
// duration of a test, so that settings on the host computer do not leak into
// the test.
func UnsetEnvPrefix(t *testing.T, prefix string) {
	for _, env := range os.Environ() {
		k, v, _ := strings.Cut(env, "=")
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		os.Unsetenv(k)
		t.Cleanup(func() {
			os.Setenv(k, v)
		})
	}
}
