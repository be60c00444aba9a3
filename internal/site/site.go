// Package site drives the build: it walks the model library, emits one HTML
// page per model, and writes the index.
package site

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dgallion1/modelsite/internal/config"
	"github.com/dgallion1/modelsite/internal/info"
	"github.com/dgallion1/modelsite/internal/render"
	"github.com/dgallion1/modelsite/internal/tree"
)

type Builder struct {
	cfg config.Config
	log *slog.Logger
}

func NewBuilder(cfg config.Config, log *slog.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// Run regenerates the whole site from the current contents of the model
// library. The first unrecoverable error aborts the build; stale output from
// earlier runs is left in place.
func (b *Builder) Run() error {
	models, err := b.discover()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.cfg.OutputModelsDir(), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	root := tree.New()
	for _, rel := range models {
		if err := b.buildPage(rel, root); err != nil {
			return err
		}
	}

	if err := b.writeIndex(root, len(models)); err != nil {
		return err
	}

	b.log.Info("site generated", "models", len(models), "dir", b.cfg.SiteDir)
	return nil
}

// discover returns the slash-separated relative paths of every model file
// under the library root, sorted for deterministic processing.
func (b *Builder) discover() ([]string, error) {
	var models []string
	err := filepath.WalkDir(b.cfg.ModelsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), b.cfg.ModelExt) {
			return nil
		}
		rel, err := filepath.Rel(b.cfg.ModelsDir, path)
		if err != nil {
			return err
		}
		models = append(models, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk models dir: %w", err)
	}
	sort.Strings(models)
	return models, nil
}

// buildPage reads one model, renders its page to the mirrored output path,
// and registers the model in the shared folder tree.
func (b *Builder) buildPage(rel string, root *tree.Node) error {
	raw, err := os.ReadFile(filepath.Join(b.cfg.ModelsDir, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("read model %s: %w", rel, err)
	}

	doc := info.Extract(info.Sanitize(raw))

	// One "../" per path segment: pages live under site/models/<rel dir>.
	depth := strings.Count(rel, "/") + 1
	prefix := strings.Repeat("../", depth)

	stem := strings.TrimSuffix(rel, b.cfg.ModelExt)
	d := render.PageData{
		Title:      path.Base(stem),
		Info:       render.Markdown(doc),
		ImageSrc:   b.screenshotSrc(stem, prefix),
		Stylesheet: prefix + "styles.css",
		BackHref:   prefix + "index.html",
		RunURL:     b.cfg.BaseRunURL + strings.ReplaceAll(rel, " ", "%20"),
	}

	page, err := render.Page(d)
	if err != nil {
		return err
	}

	outPath := filepath.Join(b.cfg.OutputModelsDir(), filepath.FromSlash(stem)+".html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create page dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write page for %s: %w", rel, err)
	}

	root.Insert(strings.Split(rel, "/"), "models/"+stem+".html")
	b.log.Info("page generated", "model", rel)
	return nil
}

// screenshotSrc probes the library for a sibling image and returns its
// page-relative source path, or "" when the model has no screenshot. The
// path points at the mirrored location under the site root; screenshots are
// expected there like the stylesheet and icons, not copied by this tool.
func (b *Builder) screenshotSrc(stem, prefix string) string {
	relImg := filepath.FromSlash(stem) + b.cfg.ScreenshotExt
	if _, err := os.Stat(filepath.Join(b.cfg.ModelsDir, relImg)); err != nil {
		return ""
	}
	return prefix + "models/" + filepath.ToSlash(relImg)
}

func (b *Builder) writeIndex(root *tree.Node, count int) error {
	treeHTML, err := tree.RenderHTML(root, "", b.cfg.ModelExt, false)
	if err != nil {
		return err
	}
	index, err := render.Index(render.IndexData{Tree: treeHTML, Count: count})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(b.cfg.SiteDir, "index.html"), []byte(index), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
