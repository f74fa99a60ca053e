package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/carebox/formgate/pkg/formspec"
	"github.com/carebox/formgate/pkg/openapi"
	"github.com/carebox/formgate/pkg/tui"
)

func main() {
	formPath := flag.String("form", "", "formspec definition path (JSON or YAML)")
	source := flag.String("source", "", "OpenAPI document path")
	opID := flag.String("operation", "submitOrder", "operation ID when deriving from OpenAPI")
	flag.Parse()

	ctx := context.Background()

	def, err := loadDefinition(ctx, *formPath, *source, *opID)
	if err != nil {
		log.Fatalf("Failed to load form definition: %v", err)
	}

	result, err := tui.NewWalker(def).Run(ctx)
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	if !result.Submitted {
		fmt.Println("Submission blocked.")
		os.Exit(1)
	}

	fmt.Printf("Form %q ready to submit:\n", def.Form)
	for name, value := range result.Values {
		fmt.Printf("  %s: %s\n", name, value)
	}
	if result.Selected != "" {
		fmt.Printf("  selection: %s\n", result.Selected)
	}
}

func loadDefinition(ctx context.Context, formPath, source, opID string) (formspec.Definition, error) {
	switch {
	case formPath != "":
		dir, file := filepath.Split(formPath)
		if dir == "" {
			dir = "."
		}
		return formspec.LoadFile(os.DirFS(dir), file)
	case source != "":
		raw, err := os.ReadFile(source)
		if err != nil {
			return formspec.Definition{}, fmt.Errorf("read %s: %w", source, err)
		}
		return openapi.Derive(ctx, raw, opID)
	default:
		return formspec.DefaultOrderForm()
	}
}
