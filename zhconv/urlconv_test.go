package zhconv

import (
	"errors"
	"strings"
	"testing"
)

// fakeConverter 按映射表做整串替换,代替 OpenCC 词典
type fakeConverter map[string]string

func (f fakeConverter) Convert(in string) (string, error) {
	out := in
	for from, to := range f {
		out = strings.ReplaceAll(out, from, to)
	}
	return out, nil
}

type errConverter struct{}

func (errConverter) Convert(string) (string, error) {
	return "", errors.New("词典损坏")
}

type panicConverter struct{}

func (panicConverter) Convert(string) (string, error) {
	panic("转换崩溃")
}

func TestTransformURL_RewritesEncodedQuery(t *testing.T) {
	reset()
	defer reset()
	Register(fakeConverter{"繁體字": "繁体字"})

	got := TransformURL("/search?q=%E7%B9%81%E9%AB%94%E5%AD%97")
	want := "/search?q=%E7%B9%81%E4%BD%93%E5%AD%97"
	if got != want {
		t.Fatalf("TransformURL = %q, want %q", got, want)
	}
}

func TestTransformURL_RewritesLiteralPath(t *testing.T) {
	reset()
	defer reset()
	Register(fakeConverter{"頁面": "页面"})

	got := TransformURL("/頁面")
	want := "/%E9%A1%B5%E9%9D%A2"
	if got != want {
		t.Fatalf("TransformURL = %q, want %q", got, want)
	}
}

func TestTransformURL_EmptyInput(t *testing.T) {
	reset()
	defer reset()
	Register(fakeConverter{})

	if got := TransformURL(""); got != "" {
		t.Fatalf("empty input changed: %q", got)
	}
}

func TestTransformURL_ConverterNotReady(t *testing.T) {
	reset()
	defer reset()

	if got := TransformURL("/search?q=%E7%B9%81"); got != "/search?q=%E7%B9%81" {
		t.Fatalf("not-ready input changed: %q", got)
	}
}

func TestTransformURL_MalformedEscapeFallsBack(t *testing.T) {
	reset()
	defer reset()
	Register(fakeConverter{"繁": "简"})

	for _, in := range []string{"/a%ZZb", "/a%9", "/a%", "%E7%B9%8"} {
		if got := TransformURL(in); got != in {
			t.Fatalf("TransformURL(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestTransformURL_InvalidUTF8FallsBack(t *testing.T) {
	reset()
	defer reset()
	Register(fakeConverter{})

	in := "/a%FF%FE"
	if got := TransformURL(in); got != in {
		t.Fatalf("TransformURL(%q) = %q, want unchanged", in, got)
	}
}

func TestTransformURL_ConverterErrorFallsBack(t *testing.T) {
	reset()
	defer reset()
	Register(errConverter{})

	in := "/search?q=%E7%B9%81"
	if got := TransformURL(in); got != in {
		t.Fatalf("TransformURL(%q) = %q, want unchanged", in, got)
	}
}

func TestTransformURL_ConverterPanicFallsBack(t *testing.T) {
	reset()
	defer reset()
	Register(panicConverter{})

	in := "/search?q=%E7%B9%81"
	if got := TransformURL(in); got != in {
		t.Fatalf("TransformURL(%q) = %q, want unchanged", in, got)
	}
}

func TestDecodeURI_PreservesReservedEscapes(t *testing.T) {
	decoded, err := decodeURI("/a%2Fb%20c%3Fd")
	if err != nil {
		t.Fatalf("decodeURI: %v", err)
	}
	if decoded != "/a%2Fb c%3Fd" {
		t.Fatalf("decoded = %q", decoded)
	}
	if got := encodeURI(decoded); got != "/a%2Fb%20c%3Fd" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestEncodeURI_LeavesURIStructureAlone(t *testing.T) {
	in := "/path/to;v=1?q=a&x=b+c#frag"
	if got := encodeURI(in); got != in {
		t.Fatalf("encodeURI(%q) = %q", in, got)
	}
	if got := encodeURI(`a "b"`); got != "a%20%22b%22" {
		t.Fatalf(`encodeURI(a "b") = %q`, got)
	}
}

func TestRegister_IgnoredAfterUnavailable(t *testing.T) {
	reset()
	defer reset()

	MarkUnavailable()
	Register(fakeConverter{})
	if Ready() {
		t.Fatal("converter registered after terminal unavailable state")
	}
}
