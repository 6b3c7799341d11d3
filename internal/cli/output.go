package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // output path from -o; may carry an extension
	fallback  string // base name when -o is empty
}

// formatExtensions maps formats to file extensions.
var formatExtensions = map[string]string{
	"svg":   ".svg",
	"json":  ".json",
	"dot":   ".dot",
	"graph": ".graph.svg",
}

// writeArtifacts writes each rendered artifact to disk and prints the
// output paths. With a single format, an explicit -o path is used verbatim;
// with several, it serves as the base name.
func writeArtifacts(params artifactWriteParams) error {
	base := basePath(params.base, params.fallback)

	for _, format := range params.formats {
		data, ok := params.artifacts[format]
		if !ok {
			continue
		}

		path := base + formatExtensions[format]
		if params.base != "" && len(params.formats) == 1 && filepath.Ext(params.base) != "" {
			path = params.base
		}

		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path: the -o value with any known
// format extension stripped, or the fallback name.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	for _, ext := range []string{".graph.svg", ".svg", ".json", ".dot"} {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}
