package typeinfo

import (
	"fmt"
	"sync"

	"github.com/teranos/gircheck/codewriter"
)

// Output file names shared by every run.
const (
	CMakeFile  = "CMakeLists.txt"
	HeaderFile = "girtypes.h"
	MainFile   = "girtypes.c"
)

// Session accumulates the outputs shared by all units of a run: the CMake
// descriptor, the header and the driver. Add is safe for concurrent use,
// but callers that need reproducible output must add units in input order.
type Session struct {
	mu       sync.Mutex
	cmake    *codewriter.Writer
	header   *codewriter.Writer
	driver   *codewriter.Writer
	pkgIndex int
	units    int
	finished bool
}

// NewSession writes the preludes of the shared outputs.
func NewSession(banner string) *Session {
	s := &Session{
		cmake:  codewriter.New(codewriter.CommentHash, codewriter.WithBanner(banner)),
		header: codewriter.New(codewriter.CommentC, codewriter.WithBanner(banner)),
		driver: codewriter.New(codewriter.CommentC, codewriter.WithBanner(banner)),
	}
	s.cmake.WriteUnindented(cmakePrelude)
	s.header.WriteUnindented(headerPrelude)
	s.driver.WriteUnindented(mainPrelude)
	return s
}

// nextPkgIndex numbers pkg_check_modules blocks across the whole run.
func (s *Session) nextPkgIndex() int {
	s.pkgIndex++
	return s.pkgIndex
}

// Add registers u: its source file and packages go to the CMake
// descriptor, its prototype to the header and its call to the driver.
func (s *Session) Add(u Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cmake.WriteLine(fmt.Sprintf("set(PROJECT_SOURCES ${PROJECT_SOURCES} ${CMAKE_CURRENT_SOURCE_DIR}/%s)", u.FileName))
	for _, pkg := range u.Packages {
		i := s.nextPkgIndex()
		s.cmake.WriteLine(fmt.Sprintf("pkg_check_modules (PKG%d REQUIRED %s)", i, pkg))
		s.cmake.WriteLine(fmt.Sprintf("list(APPEND PROJECT_INCLUDE_DIRECTORIES ${PKG%d_INCLUDE_DIRS})", i))
		s.cmake.WriteLine(fmt.Sprintf("list(APPEND PROJECT_LINK_DIRECTORIES ${PKG%d_LIBRARY_DIRS})", i))
		s.cmake.WriteLine(fmt.Sprintf(`set(CMAKE_C_FLAGS "${CMAKE_C_FLAGS} ${PKG%d_CFLAGS}")`, i))
		s.cmake.WriteLine(fmt.Sprintf("list(APPEND PROJECT_LIBRARIES ${PKG%d_LIBRARIES})", i))
		s.cmake.WriteNewline()
	}

	s.header.WriteLine(u.Prototype)
	s.driver.WriteLine(fmt.Sprintf(`    fprintf(stderr, "processing %s types....\n");`, u.Label))
	s.driver.WriteLine(fmt.Sprintf("    %s();", u.Function))
	s.units++
}

// Units returns how many units were added.
func (s *Session) Units() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units
}

// Finish writes the epilogues. It is idempotent.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.finished = true

	s.cmake.WriteUnindented(cmakeEpilogue)
	s.header.WriteNewline()
	s.header.WriteLine(headerEpilogue)
	s.driver.WriteUnindented(mainEpilogue)
}

// Files returns the shared outputs keyed by file name. Call Finish first.
func (s *Session) Files() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string][]byte{
		CMakeFile:  s.cmake.Bytes(),
		HeaderFile: s.header.Bytes(),
		MainFile:   s.driver.Bytes(),
	}
}
