package codewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gircheck/errors"
)

func TestWriteLine_Indentation(t *testing.T) {
	w := New(CommentC)
	w.WriteLine("void f()")
	w.PushScope("function")
	w.WriteLine("x();")
	w.PopScope()

	want := "void f()\n" +
		"{ /* function */\n" +
		"  x();\n" +
		"} /* function */\n"
	assert.Equal(t, want, w.Source())
}

func TestWriteSource_NoNewline(t *testing.T) {
	w := New(CommentC)
	w.PushScope("s")
	w.WriteSource("/*")
	w.WriteUnindented("raw")
	w.WriteNewline()
	w.PopScope()

	assert.Equal(t, "{ /* s */\n  /*raw\n} /* s */\n", w.Source())
}

func TestWriteComment_Styles(t *testing.T) {
	tests := []struct {
		name  string
		style CommentStyle
		text  string
		want  string
	}{
		{"c single", CommentC, "hello", "/* hello */\n"},
		{"ocaml single", CommentOCaml, "hello", "(* hello *)\n"},
		{"cpp single", CommentCPP, "hello", "// hello\n"},
		{"hash single", CommentHash, "hello", "# hello\n"},
		{"none single", CommentNone, "hello", "hello\n"},
		{"c multi", CommentC, "a\nb", "/* \n * a\n * b\n */\n"},
		{"ocaml multi", CommentOCaml, "a\nb", "(* \n * a\n * b\n *)\n"},
		{"hash multi repeats open token", CommentHash, "a\nb", "# \n# a\n# b\n# \n"},
		{"cpp multi repeats open token", CommentCPP, "a\nb", "// \n// a\n// b\n// \n"},
		{"c empty", CommentC, "", "/* \n */\n"},
		{"hash empty", CommentHash, "", "# \n# \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.style)
			w.WriteComment(tt.text)
			assert.Equal(t, tt.want, w.Source())
		})
	}
}

func TestScopes_LIFO(t *testing.T) {
	w := New(CommentHash, WithIndentUnit(4))
	w.PushScope("outer")
	w.PushScope("inner")
	assert.Equal(t, 2, w.Depth())

	assert.Equal(t, "inner", w.PopScope())
	assert.Equal(t, "outer", w.PopScope())
	assert.Equal(t, 0, w.Depth())

	want := "{ # outer\n" +
		"    { # inner\n" +
		"    } # inner\n" +
		"} # outer\n"
	assert.Equal(t, want, w.Source())
}

func TestPopScope_EmptyStackPanics(t *testing.T) {
	w := New(CommentC)

	defer func() {
		r := recover()
		require.NotNil(t, r, "PopScope on an empty stack must panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.IsAssertionFailure(err))
	}()
	w.PopScope()
}

func TestScope_ClosesOnError(t *testing.T) {
	w := New(CommentC)
	boom := errors.New("boom")

	err := w.Scope("function", func() error {
		w.WriteLine("partial();")
		return boom
	})

	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, w.Depth())
	assert.Equal(t, "{ /* function */\n  partial();\n} /* function */\n", w.Source())
}

func TestScope_ClosesOnPanic(t *testing.T) {
	w := New(CommentC)

	func() {
		defer func() { _ = recover() }()
		_ = w.Scope("function", func() error {
			panic("emission failed")
		})
	}()

	assert.Equal(t, 0, w.Depth())
	assert.Contains(t, w.Source(), "} /* function */")
}

func TestDisableWhitespace(t *testing.T) {
	pretty := New(CommentC)
	mini := New(CommentC, WithoutWhitespace())
	for _, w := range []*Writer{pretty, mini} {
		w.PushScope("function")
		w.WriteLine("a();")
		w.WriteLine("b();")
		w.PopScope()
	}

	assert.Equal(t, "{ /* function */a();b();} /* function */", mini.Source())
	assert.NotEqual(t, pretty.Source(), mini.Source())

	mini.EnableWhitespace()
	mini.WriteLine("c();")
	assert.Equal(t, "{ /* function */a();b();} /* function */c();\n", mini.Source())
}

func TestWithBanner(t *testing.T) {
	w := New(CommentC, WithBanner("line one\nline two"))
	assert.Equal(t, "/* \n * line one\n * line two\n */\n", w.Source())
}

func TestBytes_IsCopy(t *testing.T) {
	w := New(CommentNone)
	w.WriteLine("ünïcode")

	b := w.Bytes()
	assert.Equal(t, []byte("ünïcode\n"), b)

	b[0] = 'X'
	assert.Equal(t, "ünïcode\n", w.Source())
}

func TestWrite_IOWriter(t *testing.T) {
	w := New(CommentC)
	w.PushScope("s")
	n, err := w.Write([]byte("verbatim\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	w.PopScope()

	assert.Equal(t, "{ /* s */\nverbatim\n} /* s */\n", w.Source())
}
