package control

import (
	"strings"
	"testing"

	"github.com/dhamidi/debctrl/parser"
)

func parseDocument(t *testing.T, input string) (*parser.Document, *[]string) {
	t.Helper()
	warnings := &[]string{}
	doc := parser.New()
	doc.SetHandler(parser.HandlerFuncs{
		WarnFunc: func(ctx *parser.Context, message string) {
			*warnings = append(*warnings, message)
		},
		CriticalFunc: func(ctx *parser.Context, message string) {
			t.Errorf("unexpected critical error: %s", message)
		},
	})
	if err := doc.Read(strings.NewReader(input), "debian/control"); err != nil {
		t.Fatalf("Read: %v", err)
	}
	return doc, warnings
}

const sampleControl = "Source: libfoo\n" +
	"Section: libs\n" +
	"Priority: optional\n" +
	"Maintainer: A Person <a@example.com>\n" +
	"Standards-Version: 4.6.2\n" +
	"Build-Depends: debhelper-compat (= 13),\n" +
	" libbar-dev (>= 1.2)\n" +
	"\n" +
	"Package: libfoo1\n" +
	"Architecture: any\n" +
	"Depends: ${shlibs:Depends},\n" +
	" ${misc:Depends}\n" +
	"Description: foo shared library\n" +
	" The foo library does things.\n" +
	" .\n" +
	"  preformatted example\n" +
	"\n" +
	"Package: libfoo-dev\n" +
	"Architecture: any\n" +
	"Description: foo development files\n"

func TestParse(t *testing.T) {
	doc, warnings := parseDocument(t, sampleControl)

	ctl, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(*warnings) != 0 {
		t.Errorf("unexpected warnings: %v", *warnings)
	}

	src := ctl.Source
	if src.Name != "libfoo" {
		t.Errorf("source name = %q", src.Name)
	}
	if src.Maintainer != "A Person <a@example.com>" {
		t.Errorf("maintainer = %q", src.Maintainer)
	}
	if src.StandardsVersion != "4.6.2" {
		t.Errorf("standards-version = %q", src.StandardsVersion)
	}
	if want := "debhelper-compat (= 13), libbar-dev (>= 1.2)"; src.BuildDepends != want {
		t.Errorf("build-depends = %q, want %q", src.BuildDepends, want)
	}

	if len(ctl.Binaries) != 2 {
		t.Fatalf("got %d binaries, want 2", len(ctl.Binaries))
	}
	bin := ctl.Binaries[0]
	if bin.Package != "libfoo1" || bin.Architecture != "any" {
		t.Errorf("binary 0 = %+v", bin)
	}
	if want := "${shlibs:Depends}, ${misc:Depends}"; bin.Depends != want {
		t.Errorf("depends = %q, want %q", bin.Depends, want)
	}
	if bin.Synopsis != "foo shared library" {
		t.Errorf("synopsis = %q", bin.Synopsis)
	}
	wantDesc := []string{"The foo library does things.", "", "preformatted example"}
	if len(bin.Description) != len(wantDesc) {
		t.Fatalf("description = %v, want %v", bin.Description, wantDesc)
	}
	for i := range wantDesc {
		if bin.Description[i] != wantDesc[i] {
			t.Errorf("description[%d] = %q, want %q", i, bin.Description[i], wantDesc[i])
		}
	}
}

func TestParseWarnsOnInvalidNames(t *testing.T) {
	input := "Source: Foo\n" +
		"\n" +
		"Package: f\n" +
		"\n" +
		"Architecture: any\n"

	doc, warnings := parseDocument(t, input)
	ctl, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Bad capitalized source name, too-short binary name, and the
	// paragraph lacking a Package field each warn.
	if len(*warnings) != 3 {
		t.Fatalf("warnings = %v, want 3", *warnings)
	}
	if ctl.Source.Name != "Foo" {
		t.Errorf("source name = %q", ctl.Source.Name)
	}
	if len(ctl.Binaries) != 1 {
		t.Errorf("got %d binaries, want 1", len(ctl.Binaries))
	}
}

func TestParseRequiresSource(t *testing.T) {
	doc, _ := parseDocument(t, "Package: libfoo1\n")
	if _, err := Parse(doc); err == nil {
		t.Error("Parse succeeded without a Source field")
	}

	empty := parser.New()
	if _, err := Parse(empty); err == nil {
		t.Error("Parse succeeded on an empty document")
	}
}

func TestValidPackageName(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"libfoo", nil},
		{"0ad", nil},
		{"g++", nil},
		{"libfoo-dev", nil},
		{"lib.foo", nil},
		{"", ErrNameLength},
		{"a", ErrNameLength},
		{"Foo", ErrNamePrefix},
		{"-foo", ErrNamePrefix},
		{"+foo", ErrNamePrefix},
		{"foo_bar", ErrNameCharset},
		{"fooBar", ErrNameCharset},
		{"foo bar", ErrNameCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPackageName(tt.name); got != tt.want {
				t.Errorf("ValidPackageName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
