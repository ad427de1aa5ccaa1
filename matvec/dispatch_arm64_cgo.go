//go:build arm64 && cgo

package matvec

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		vectorizedImpl = matVecNEON
		vectorizedImplDesc = "NEON"
	} else {
		vectorizedImpl = matVecVecGo
		vectorizedImplDesc = "Go"
	}
}
