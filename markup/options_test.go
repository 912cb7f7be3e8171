package markup

import (
	"testing"
)

func TestParseOptions_Select(t *testing.T) {
	options, err := ParseOptions(`<select>
		<option value="a">Alpha</option>
		<option value="b" disabled>Bravo</option>
		<option>Charlie</option>
	</select>`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(options))
	}

	if options[0].Value != "a" || options[0].Label != "Alpha" {
		t.Errorf("Unexpected first option: %+v", options[0])
	}
	if !options[1].Disabled {
		t.Error("Expected second option disabled")
	}
	if options[2].Value != "Charlie" {
		t.Errorf("Expected value to fall back to label, got %v", options[2].Value)
	}
}

func TestParseOptions_BareList(t *testing.T) {
	options, err := ParseOptions(`<option value="x">X</option><option value="y">Y</option>`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if len(options) != 2 {
		t.Errorf("Expected 2 options from a bare list, got %d", len(options))
	}
}

func TestParseOptions_DataAttributes(t *testing.T) {
	options, err := ParseOptions(`<option value="go" data-description="compiled language" data-tag="fast">Go</option>`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("Expected 1 option, got %d", len(options))
	}

	opt := options[0]
	if opt.Description != "compiled language" {
		t.Errorf("Expected data-description mapped to Description, got %q", opt.Description)
	}
	if opt.Metadata["tag"] != "fast" {
		t.Errorf("Expected data-tag in metadata, got %v", opt.Metadata)
	}
	if _, ok := opt.Metadata["description"]; ok {
		t.Error("Expected data-description to not be duplicated in metadata")
	}
}

func TestParseOptions_OptgroupFlattened(t *testing.T) {
	options, err := ParseOptions(`<select>
		<optgroup label="Fruit">
			<option value="apple">Apple</option>
		</optgroup>
		<option value="salt">Salt</option>
	</select>`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(options))
	}

	if options[0].Metadata[groupKey] != "Fruit" {
		t.Errorf("Expected group label recorded, got %v", options[0].Metadata)
	}
	if options[1].Metadata != nil {
		t.Errorf("Expected no metadata for ungrouped option, got %v", options[1].Metadata)
	}
}

func TestParseOptions_WhitespaceCollapsed(t *testing.T) {
	options, err := ParseOptions("<option value=\"w\">\n\t  Two   Words \n</option>")
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if options[0].Label != "Two Words" {
		t.Errorf("Expected collapsed label, got %q", options[0].Label)
	}
}

func TestParseOptions_MalformedInputDegrades(t *testing.T) {
	options, err := ParseOptions(`<select><option value="a">Alpha<option value="b">Bravo`)
	if err != nil {
		t.Fatalf("Expected recoverable parse, got error: %v", err)
	}
	if len(options) != 2 {
		t.Errorf("Expected parser recovery to yield 2 options, got %d", len(options))
	}
}

func TestParseOptions_Empty(t *testing.T) {
	options, err := ParseOptions("")
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if len(options) != 0 {
		t.Errorf("Expected no options, got %d", len(options))
	}
}
