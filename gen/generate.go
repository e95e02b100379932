package gen

import (
	"context"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/strata/metadata"
	"github.com/syssam/strata/naming"
	"github.com/syssam/strata/schema/sqltype"
)

// Generator renders entity metadata into a set of source artifacts.
// Rendering is pure with respect to I/O: results come back as a map of
// relative paths to content, and writing them is the caller's concern.
type Generator struct {
	renderer     Renderer
	lang         sqltype.Lang
	sourceRoot   string
	resourceRoot string
	testRoot     string
	workers      int
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLang sets the target language. The default is Java.
func WithLang(lang sqltype.Lang) Option {
	return func(g *Generator) error {
		if lang != sqltype.Java && lang != sqltype.Kotlin {
			return NewTemplateNotFoundError(TemplateID{Lang: lang})
		}
		g.lang = lang
		return nil
	}
}

// WithSourceRoot sets the root directory of generated source artifacts.
func WithSourceRoot(root string) Option {
	return func(g *Generator) error {
		g.sourceRoot = root
		return nil
	}
}

// WithResourceRoot sets the root directory of generated resources.
func WithResourceRoot(root string) Option {
	return func(g *Generator) error {
		g.resourceRoot = root
		return nil
	}
}

// WithTestRoot sets the root directory of generated test sources.
func WithTestRoot(root string) Option {
	return func(g *Generator) error {
		g.testRoot = root
		return nil
	}
}

// WithWorkers caps the parallel template renderings.
func WithWorkers(n int) Option {
	return func(g *Generator) error {
		if n > 0 {
			g.workers = n
		}
		return nil
	}
}

// NewGenerator returns a generator bound to the given renderer.
func NewGenerator(renderer Renderer, opts ...Option) (*Generator, error) {
	g := &Generator{
		renderer:     renderer,
		lang:         sqltype.Java,
		resourceRoot: "src/main/resources",
		workers:      4,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.sourceRoot == "" {
		g.sourceRoot = "src/main/" + string(g.lang)
	}
	if g.testRoot == "" {
		g.testRoot = "src/test/" + string(g.lang)
	}
	return g, nil
}

// Generate renders one artifact per enabled feature, in parallel.
// Disabled features contribute nothing: an all-false configuration
// yields an empty map. All-or-nothing: any rendering failure returns a
// nil map and the first error.
func (g *Generator) Generate(ctx context.Context, md *metadata.EntityMetadata, cfg FeatureConfig) (map[string]string, error) {
	return g.GenerateFeatures(ctx, md, cfg, cfg.Enabled()...)
}

// GenerateFeatures renders exactly the given features. It is the
// explicit form of Generate for callers that request artifacts outside
// the configuration switches, such as the entity class itself.
func (g *Generator) GenerateFeatures(ctx context.Context, md *metadata.EntityMetadata, cfg FeatureConfig, features ...Feature) (map[string]string, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		files = make(map[string]string, len(features))
	)
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, f := range features {
		if f.modifier {
			continue
		}
		errg.Go(func() error {
			id := TemplateID{Feature: f.Name, Lang: g.lang}
			if f.resource {
				id.Lang = ""
			}
			content, err := g.renderer.Render(id, &View{
				Entity:   md,
				Config:   cfg,
				Lang:     g.lang,
				Package:  md.PackageFor(f.Layer),
				TypeName: md.ClassName + f.Suffix,
			})
			if err != nil {
				return err
			}
			mu.Lock()
			files[g.artifactPath(md, f)] = content
			mu.Unlock()
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// artifactPath derives the relative output path of one artifact. The
// derivation is pure and collision-free for distinct (entity, feature)
// pairs.
func (g *Generator) artifactPath(md *metadata.EntityMetadata, f Feature) string {
	if f.resource {
		return path.Join(g.resourceRoot, f.Name, naming.Snake(md.ClassName)+f.ext)
	}
	root := g.sourceRoot
	if f.test {
		root = g.testRoot
	}
	pkg := md.PackageFor(f.Layer)
	return path.Join(root, packagePath(pkg), md.ClassName+f.Suffix+"."+g.lang.Ext())
}

// packagePath converts a dotted package name to a directory path.
func packagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}
