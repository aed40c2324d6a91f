package livedoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	liveerrors "github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
)

var id = livenode.ID

const sampleYAML = `
title:
  text: hello
  width: 40
  scale: 1.5
  visible: true
  hint: null
  color: "#ff0000"
tags: [a, b]
`

const sampleJSON = `{
  "title": {
    "text": "hello",
    "width": 40,
    "scale": 1.5,
    "visible": true,
    "hint": null,
    "color": "#ff0000"
  },
  "tags": ["a", "b"]
}`

func sampleNodes() livenode.Nodes {
	return livenode.Build().
		Object(livenode.EmptyID).
		Object(id("title")).
		Str(id("text"), "hello").
		Int(id("width"), 40).
		Float(id("scale"), 1.5).
		Bool(id("visible"), true).
		Value(id("hint"), livenode.None()).
		Color(id("color"), 0xffff0000).
		End().
		Array(id("tags")).
		Str(livenode.EmptyID, "a").
		Str(livenode.EmptyID, "b").
		End().
		End().
		Nodes()
}

func parseOK(t *testing.T, parse func([]byte) (livenode.Nodes, error), doc string) livenode.Nodes {
	t.Helper()
	nodes, err := parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return nodes
}

func sameNodes(t *testing.T, got, want livenode.Nodes) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("nodes differ\ngot:  %v\nwant: %v", got, want)
	}
}

func TestFromYAML(t *testing.T) {
	nodes := parseOK(t, FromYAML, sampleYAML)
	sameNodes(t, nodes, sampleNodes())
	if !nodes.Balanced() {
		t.Error("stream is not balanced")
	}
}

func TestFromJSON(t *testing.T) {
	sameNodes(t, parseOK(t, FromJSON, sampleJSON), sampleNodes())
}

func TestYAMLAndJSONAgree(t *testing.T) {
	y, err := Parse(FormatYAML, []byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	j, err := Parse(FormatJSON, []byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	sameNodes(t, y, j)
}

func TestYAMLTags(t *testing.T) {
	nodes := parseOK(t, FromYAML, `
tint: !color SteelBlue
hex: !color "#0f0"
anim: !id hover
literal: !!str "#fff"
`)

	want := livenode.Build().
		Object(livenode.EmptyID).
		Color(id("tint"), 0xff4682b4).
		Color(id("hex"), 0xff00ff00).
		IDRef(id("anim"), id("hover")).
		Str(id("literal"), "#fff").
		End().
		Nodes()
	sameNodes(t, nodes, want)
}

func TestYAMLAliasesAndMerge(t *testing.T) {
	nodes := parseOK(t, FromYAML, `
base: &base
  width: 10
  text: base
button:
  <<: *base
  text: ok
copy: *base
`)

	want := livenode.Build().
		Object(livenode.EmptyID).
		Object(id("base")).Int(id("width"), 10).Str(id("text"), "base").End().
		Object(id("button")).Int(id("width"), 10).Str(id("text"), "base").Str(id("text"), "ok").End().
		Object(id("copy")).Int(id("width"), 10).Str(id("text"), "base").End().
		End().
		Nodes()
	sameNodes(t, nodes, want)
}

func TestYAMLAliasFanOutIsBounded(t *testing.T) {
	var b strings.Builder
	b.WriteString("l0: &l0 {v: 1}\n")
	for level := 1; level <= 7; level++ {
		fmt.Fprintf(&b, "l%d: &l%d [", level, level)
		for i := 0; i < 10; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", level-1)
		}
		b.WriteString("]\n")
	}

	_, err := FromYAML([]byte(b.String()))
	if !errors.Is(err, liveerrors.ErrSyntax) {
		t.Fatalf("err = %v, want a syntax error", err)
	}
	if !strings.Contains(err.Error(), "alias expansion") {
		t.Errorf("err = %v, want it to name the alias expansion", err)
	}
}

func TestYAMLSmallAliasFanOutIsAllowed(t *testing.T) {
	nodes := parseOK(t, FromYAML, "a: &a {v: 1}\nb: [*a, *a, *a, *a]\n")
	// root, a{v}, b[4 x {v}]
	if want := 2 + 3 + 2 + 4*3; len(nodes) != want {
		t.Errorf("got %d nodes, want %d", len(nodes), want)
	}
}

func TestEmptyYAML(t *testing.T) {
	sameNodes(t, parseOK(t, FromYAML, ""), livenode.Build().Object(livenode.EmptyID).End().Nodes())
}

func TestMalformedDocuments(t *testing.T) {
	deep := `{"a":` + strings.Repeat("[", maxDepth+2) + strings.Repeat("]", maxDepth+2) + `}`
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml sequence root", FormatYAML, "- a\n- b\n"},
		{"yaml scalar root", FormatYAML, "hello\n"},
		{"yaml bad color", FormatYAML, "c: !color nope\n"},
		{"yaml unknown tag", FormatYAML, "c: !widget x\n"},
		{"yaml complex key", FormatYAML, "? [a, b]\n: 1\n"},
		{"yaml syntax", FormatYAML, "a: [1, 2\n"},
		{"json array root", FormatJSON, `[1, 2]`},
		{"json truncated", FormatJSON, `{"a": `},
		{"json trailing", FormatJSON, `{"a": 1} {}`},
		{"json too deep", FormatJSON, deep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.format, []byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSyntaxErrorsWrapSentinel(t *testing.T) {
	_, err := FromYAML([]byte("- a\n"))
	if !errors.Is(err, liveerrors.ErrSyntax) {
		t.Errorf("err = %v, want ErrSyntax", err)
	}

	var le *liveerrors.LiveError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want a *LiveError", err)
	}
	if le.Kind != liveerrors.KindDocument {
		t.Errorf("Kind = %v, want document", le.Kind)
	}
}

func TestJSONNumbers(t *testing.T) {
	nodes := parseOK(t, FromJSON, `{"i": -3, "f": 2.5, "e": 1e3}`)
	want := []livenode.Value{livenode.Int(-3), livenode.Float(2.5), livenode.Float(1000)}
	for i, w := range want {
		if got := nodes[i+1].Value; got != w {
			t.Errorf("node %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#fff", 0xffffffff},
		{"#f008", 0x88ff0000},
		{"#123456", 0xff123456},
		{"#11223344", 0x44112233},
		{"#ABCDEF", 0xffabcdef},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %#08x, %v; want %#08x", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []string{"fff", "#12", "#ggg", "#1234567", ""} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorNamesAndFormatting(t *testing.T) {
	if red, ok := NamedColor("red"); !ok || red != 0xffff0000 {
		t.Errorf("NamedColor(red) = %#08x, %v", red, ok)
	}
	if _, ok := NamedColor("not-a-color"); ok {
		t.Error("unknown color name resolved")
	}

	if got := FormatColor(0x44112233); got != "#11223344" {
		t.Errorf("FormatColor = %q", got)
	}
	back, err := ParseColor(FormatColor(0x80abcdef))
	if err != nil || back != 0x80abcdef {
		t.Errorf("round trip = %#08x, %v", back, err)
	}
}

func TestFormats(t *testing.T) {
	paths := []struct {
		path string
		want Format
		ok   bool
	}{
		{"ui/main.YML", FormatYAML, true},
		{"ui/main.json", FormatJSON, true},
		{"ui/main.toml", "", false},
	}
	for _, tt := range paths {
		f, ok := FormatFromPath(tt.path)
		if ok != tt.ok || (ok && f != tt.want) {
			t.Errorf("FormatFromPath(%q) = %v, %v", tt.path, f, ok)
		}
	}

	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yml) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	nodes, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sameNodes(t, nodes, sampleNodes())

	for _, bad := range []string{"main.txt", "missing.json"} {
		if _, err := Load(filepath.Join(dir, bad), ""); err == nil {
			t.Errorf("Load(%s) should fail", bad)
		}
	}
}
