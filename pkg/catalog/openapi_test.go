package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tableform/pkg/catalog"
)

func TestFromOpenAPI(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "applicants.openapi.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	got, err := catalog.FromOpenAPI(context.Background(), data, "Applicant")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}

	want := []catalog.Field{
		{ID: "bio", Name: "bio", Type: catalog.TypeMultilineText},
		{ID: "cv", Name: "cv", Type: catalog.TypeMultipleAttachments},
		{ID: "fldName", Name: "Full name", Type: catalog.TypeSingleLineText},
		{ID: "notes", Name: "notes", Type: catalog.TypeRichText},
		{ID: "role", Name: "role", Type: catalog.TypeSingleSelect, Options: catalog.Choices{"Engineer", "Designer"}},
		{ID: "stack", Name: "stack", Type: catalog.TypeMultipleSelects, Options: catalog.Choices{"Go", "Rust"}},
		{ID: "tags", Name: "tags", Type: catalog.TypeMultipleSelects},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPIErrors(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "applicants.openapi.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	if _, err := catalog.FromOpenAPI(context.Background(), data, "Missing"); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
	if _, err := catalog.FromOpenAPI(context.Background(), data, " "); err == nil {
		t.Fatalf("expected error for empty schema name")
	}
	if _, err := catalog.FromOpenAPI(context.Background(), nil, "Applicant"); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
