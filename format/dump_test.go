package format

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDumpEncoder(t *testing.T) {
	input := "Source: foo\n" +
		"Description: synopsis\n" +
		" merged\n" +
		" .\n" +
		"\n" +
		"Package: libfoo\n"

	doc := parseString(t, input)
	var sb strings.Builder
	if err := NewDumpEncoder(&sb).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := "------ Section 1 ------\n" +
		"  Source\n" +
		"[fixed] foo\n" +
		"  Description\n" +
		"[fixed] synopsis\n" +
		"[merge] merged\n" +
		"[empty]\n" +
		"------ Section 2 ------\n" +
		"  Package\n" +
		"[fixed] libfoo\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestJSONEncoder(t *testing.T) {
	doc := parseString(t, "Source: foo\n .\n")

	var sb strings.Builder
	if err := NewJSONEncoder(&sb).Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var data struct {
		Path     string `json:"path"`
		Sections []struct {
			Blocks []struct {
				Name   string `json:"name"`
				Chunks []struct {
					Kind string `json:"kind"`
					Text string `json:"text"`
					Line int    `json:"line"`
				} `json:"chunks"`
			} `json:"blocks"`
		} `json:"sections"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if data.Path != "test/control" {
		t.Errorf("path = %q", data.Path)
	}
	if len(data.Sections) != 1 || len(data.Sections[0].Blocks) != 1 {
		t.Fatalf("unexpected shape: %+v", data)
	}
	chunks := data.Sections[0].Blocks[0].Chunks
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Kind != "fixed" || chunks[0].Text != "foo" || chunks[0].Line != 1 {
		t.Errorf("chunk 0 = %+v", chunks[0])
	}
	if chunks[1].Kind != "empty" || chunks[1].Line != 2 {
		t.Errorf("chunk 1 = %+v", chunks[1])
	}
}
