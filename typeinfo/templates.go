package typeinfo

import (
	_ "embed"
	"strings"
)

// Runtime support compiled into the girtypes executable.
var (
	//go:embed templates/girtypes_prelude.c
	mainPrelude string
	//go:embed templates/girtypes_epilogue.c
	mainEpilogue string
	//go:embed templates/girtypes_header.h
	headerPrelude string
	//go:embed templates/cmake_prelude.txt
	cmakePrelude string
	//go:embed templates/cmake_epilogue.txt
	cmakeEpilogue string
	//go:embed templates/license.txt
	license string
)

const headerEpilogue = "#endif /* _girtypes_h */"

// LicenseBanner is the LGPL notice written at the top of every generated
// file when banners are enabled.
func LicenseBanner() string {
	return strings.TrimSuffix(license, "\n")
}
