//go:build amd64 && cgo

package matvec

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX512F {
		vectorizedImpl = matVecAVX512
		vectorizedImplDesc = "AVX-512"
	} else if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		vectorizedImpl = matVecAVX2
		vectorizedImplDesc = "AVX2"
	} else {
		vectorizedImpl = matVecVecGo
		vectorizedImplDesc = "Go"
	}
}
