package iconsgen

import (
	"fmt"

	"github.com/yacobolo/iconsgen/internal/logging"
)

// Generate is the main entry point. It reads the sources, builds the icon set
// and writes the SCSS, CSS and reference documents, in that order.
//
// The first error aborts the run. A ReadError means nothing was written; a
// WriteError leaves the artifacts written before it on disk, and the returned
// result lists them in Written.
func Generate(config Config, reporter *Reporter) (*GenerateResult, error) {
	log := logging.Logger("generate")
	done := logging.LogOperationStart(log, "generate")
	defer done()

	// 1. Scan sources and build the icon set
	set, result, err := LoadIconSet(config)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("files", result.FilesScanned).
		Int("candidates", result.IconsExtracted).
		Int("filtered", result.IconsFiltered).
		Int("icons", result.IconsGenerated).
		Msg("Built icon set")

	// 2. Empty policy
	if len(set) == 0 {
		if config.FailOnEmpty {
			return result, ErrNoIcons
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("no icons extracted from %v; writing empty outputs", config.Sources))
	}
	result.Warnings = append(result.Warnings, classCollisions(set, config.Prefix)...)

	reporter.Found(len(set))

	// 3. Render everything before touching the filesystem
	docs, err := RenderAll(set, config)
	if err != nil {
		return result, fmt.Errorf("render failed: %w", err)
	}

	// 4. Write in order; no rollback of earlier artifacts
	writer := config.Writer
	if writer == nil {
		writer = NewOSWriter()
	}
	for _, doc := range docs {
		if err := writer.WriteFile(doc.Path, doc.Content); err != nil {
			return result, &WriteError{Path: doc.Path, Err: err}
		}
		result.Written = append(result.Written, doc.Path)
		log.Debug().Str("kind", string(doc.Kind)).Str("path", doc.Path).Int("bytes", len(doc.Content)).Msg("Wrote artifact")
		reporter.Written(doc, len(set))
	}

	reporter.Done()
	return result, nil
}
