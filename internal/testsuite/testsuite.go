// Package testsuite provides common helpers for go test.
package testsuite

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Bytes is used to generate test byte slice that contains 0-255.
func Bytes() []byte {
	testdata := make([]byte, 256)
	for i := 0; i < 256; i++ {
		testdata[i] = byte(i)
	}
	return testdata
}

// DeferForPanic is used to add recover to a defer function and log
// the panic, it is used to test the panic path.
func DeferForPanic(t testing.TB) {
	r := recover()
	require.NotNil(t, r, "no panic appeared")
	t.Logf("\npanic in %s:\n%s\n", t.Name(), r)
}

// IsDestroyed is used to check if the object can be garbage collected
// after the test released all references to it.
func IsDestroyed(t testing.TB, object interface{}) {
	require.True(t, isDestroyed(object), "object is not destroyed")
}

func isDestroyed(object interface{}) bool {
	destroyed := make(chan struct{})
	runtime.SetFinalizer(object, func(interface{}) {
		close(destroyed)
	})
	// total 3 seconds
	for i := 0; i < 300; i++ {
		runtime.GC()
		select {
		case <-destroyed:
			return true
		case <-time.After(10 * time.Millisecond):
		}
	}
	return false
}
