// Command contour batch-extracts document outlines. It reads decoder
// output JSON (positioned text spans per page) from an input directory
// and writes one {title, outline} JSON per document to an output
// directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/internal/config"
	"github.com/tsawler/contour/model"
)

func main() {
	var (
		inputDir   = flag.String("input", "input", "directory of decoder JSON documents")
		outputDir  = flag.String("output", "output", "directory for outline JSON files")
		workers    = flag.Int("workers", 0, "parallel documents (0 = number of CPUs)")
		configPath = flag.String("config", "", "optional YAML config file")
		indent     = flag.Bool("indent", false, "indent output JSON")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil {
		log.Fatalf("scan input: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .json documents in %s", *inputDir)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var succeeded atomic.Int64

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := processFile(file, *outputDir, cfg, *indent); err != nil {
				log.Printf("FAIL %s: %v", filepath.Base(file), err)
				return nil // keep the batch going
			}
			succeeded.Add(1)
			log.Printf("ok   %s", filepath.Base(file))
			return nil
		})
	}

	_ = g.Wait()

	log.Printf("done: %d/%d documents", succeeded.Load(), len(files))
	if int(succeeded.Load()) < len(files) {
		os.Exit(1)
	}
}

// processFile extracts one document's outline and writes it next to the
// others in outDir.
func processFile(path, outDir string, cfg config.Config, indent bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if maxBytes := int64(cfg.MaxFileSizeMB) * 1024 * 1024; info.Size() > maxBytes {
		return fmt.Errorf("%w: %d bytes over limit %d MB",
			contour.ErrInputTooLarge, info.Size(), cfg.MaxFileSizeMB)
	}

	doc, err := readDocument(path)
	if err != nil {
		return fmt.Errorf("%w: %v", contour.ErrUnreadableDocument, err)
	}

	outline, warnings, err := contour.FromDocument(doc).
		MaxPages(cfg.MaxPages).
		HeadingSizeFactor(cfg.HeadingSizeFactor).
		VerticalMargin(cfg.VerticalMargin).
		HeadingCharBounds(cfg.MinHeadingChars, cfg.MaxHeadingWords).
		MinRepeatPages(cfg.MinRepeatPages).
		MinGridRows(cfg.MinGridRows).
		Outline()
	if len(warnings) > 0 {
		log.Printf("warn %s:\n%s", filepath.Base(path), contour.FormatWarnings(warnings))
	}
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return writeOutline(filepath.Join(outDir, name+".json"), outline, indent)
}

// decoder output schema: one document, pages with positioned spans.
type inputDocument struct {
	Pages []inputPage `json:"pages"`
}

type inputPage struct {
	Number int         `json:"number"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Spans  []inputSpan `json:"spans"`
}

type inputSpan struct {
	Text   string     `json:"text"`
	BBox   [4]float64 `json:"bbox"`
	Font   string     `json:"font"`
	Size   float64    `json:"size"`
	Bold   bool       `json:"bold"`
	Italic bool       `json:"italic"`
}

// readDocument parses decoder JSON into the library's document model.
func readDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in inputDocument
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	doc := &model.Document{Pages: make([]model.Page, 0, len(in.Pages))}
	for i, p := range in.Pages {
		number := p.Number
		if number <= 0 {
			number = i + 1
		}
		page := model.Page{
			Number: number,
			Width:  p.Width,
			Height: p.Height,
			Spans:  make([]model.Span, 0, len(p.Spans)),
		}
		for _, s := range p.Spans {
			page.Spans = append(page.Spans, model.Span{
				Text:     s.Text,
				BBox:     model.NewBBoxFromCorners(s.BBox[0], s.BBox[1], s.BBox[2], s.BBox[3]),
				Page:     number,
				FontName: s.Font,
				FontSize: s.Size,
				Bold:     s.Bold,
				Italic:   s.Italic,
			})
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// writeOutline marshals the outline to its output file.
func writeOutline(path string, outline *model.Outline, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(outline, "", "  ")
	} else {
		data, err = json.Marshal(outline)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
