package db

import (
	"reflect"
	"strings"
	"testing"
)

func TestIndexBuilder_Fields(t *testing.T) {
	idx := NewIndex("propdex:firm:idx").
		Prefix("propdex:firm:").
		SortableNumeric("$.__seq", "seq").
		TagWithOpts("$.trading_platforms[*]", "platform", "", true).
		Tag("$.__news_trading", "news_trading").
		Numeric("$.rating", "rating").
		MustBuild()

	if idx.Name != "propdex:firm:idx" {
		t.Errorf("name = %q", idx.Name)
	}
	if !reflect.DeepEqual(idx.Prefixes, []string{"propdex:firm:"}) {
		t.Errorf("prefixes = %v", idx.Prefixes)
	}
	want := []IndexField{
		{Name: "$.__seq", Alias: "seq", Type: IndexFieldNumeric, Sortable: true},
		{Name: "$.trading_platforms[*]", Alias: "platform", Type: IndexFieldTag, TagCaseSensitive: true},
		{Name: "$.__news_trading", Alias: "news_trading", Type: IndexFieldTag},
		{Name: "$.rating", Alias: "rating", Type: IndexFieldNumeric},
	}
	if !reflect.DeepEqual(idx.Fields, want) {
		t.Errorf("fields = %+v, want %+v", idx.Fields, want)
	}
}

func TestIndexBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		builder *IndexBuilder
		wantErr string
	}{
		{"empty name", NewIndex("").Tag("$.a", "a"), "name is required"},
		{"bad name", NewIndex("bad name!").Tag("$.a", "a"), "invalid characters"},
		{"no fields", NewIndex("idx"), "at least one field"},
		{"empty path", NewIndex("idx").Tag("", "a"), "field name is required"},
		{"not a json path", NewIndex("idx").Tag("a", "a"), "must be a json path"},
		{"duplicate alias", NewIndex("idx").Tag("$.a", "x").Numeric("$.b", "x"), "duplicate"},
		{"json path without alias", NewIndex("idx").Tag("$.a", ""), "requires an alias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestIndexBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIsValidIdentifier(t *testing.T) {
	for _, s := range []string{"idx", "propdex:firm:idx", "a-b_c"} {
		if !IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = false", s)
		}
	}
	for _, s := range []string{"", "a b", "a/b"} {
		if IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = true", s)
		}
	}
}
