package security

import (
	"reflect"
	"runtime"
	"unsafe"
)

// CoverBytes is used to cover byte slice if byte slice has secret.
func CoverBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}

// CoverString is used to cover string if string has secret.
// If it is a constant string, it will panic because write invalid memory.
// Don't cover string about map key, or maybe trigger data race.
func CoverString(str string) {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&str)) // #nosec
	var bs []byte
	bsh := (*reflect.SliceHeader)(unsafe.Pointer(&bs)) // #nosec
	bsh.Data = sh.Data
	bsh.Len = sh.Len
	bsh.Cap = sh.Len
	CoverBytes(bs)
	runtime.KeepAlive(&str)
}

// CoverRunes is used to cover []rune if it has secret.
func CoverRunes(r []rune) {
	for i := 0; i < len(r); i++ {
		r[i] = 0
	}
}
