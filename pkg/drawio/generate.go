package drawio

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seqdraw/pkg/config"
	"github.com/matzehuels/seqdraw/pkg/errors"
	"github.com/matzehuels/seqdraw/pkg/layout"
	"github.com/matzehuels/seqdraw/pkg/observability"
)

// Generator turns layout models into draw.io documents.
//
// A Generator only holds read-only options. Every call creates its own
// identifier sequence and run timestamp, so a Generator may be reused.
type Generator struct {
	position config.Position
	style    config.Style
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for diagnostics. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock sets the clock the run timestamp is taken from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a Generator for cfg. A nil cfg uses [config.Default].
func New(cfg *config.Config, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Generator{
		position: cfg.Position,
		style:    cfg.Style,
		logger:   log.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Assemble builds the document for m without writing it.
//
// It returns [ErrNoLifelines] or [ErrNoMessages] when there is nothing to
// draw, and an INVALID_* error for inconsistent models.
func (g *Generator) Assemble(m *layout.Model) (*Document, error) {
	return assemble(m, g.position, g.style, g.now())
}

// Write assembles m and encodes the document to w.
func (g *Generator) Write(w io.Writer, m *layout.Model) error {
	doc, err := g.Assemble(m)
	if err != nil {
		return err
	}
	return Encode(w, doc)
}

// GenerateFile writes the document for m to path.
//
// The file is created before the model is checked, so a model with nothing
// to draw leaves an empty file behind and returns a PRECONDITION_NOT_MET
// error. On any other error the file content is undefined.
func (g *Generator) GenerateFile(ctx context.Context, m *layout.Model, path string) (err error) {
	start := time.Now()
	nodes := 0
	observability.Generate().OnGenerateStart(ctx, path, len(m.Lifelines), len(m.Messages))
	defer func() {
		observability.Generate().OnGenerateComplete(ctx, path, nodes, time.Since(start), err)
	}()

	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()

	doc, err := g.Assemble(m)
	if err != nil {
		return err
	}
	if err := Encode(f, doc); err != nil {
		return err
	}

	nodes = len(doc.Root.Objects)
	g.logger.Debug("wrote diagram",
		"path", path,
		"lifelines", len(m.Lifelines),
		"activations", m.ActivationCount(),
		"messages", len(m.Messages),
		"nodes", nodes,
		"duration", time.Since(start).Round(time.Microsecond))
	return nil
}

// Generate writes the document for m to path and reports success.
//
// A model without lifelines or messages is logged and reported as success
// even though the file holds no diagram. Output and encoding failures are
// logged with their cause and reported as false; the file at path must not
// be used in that case.
func (g *Generator) Generate(ctx context.Context, m *layout.Model, path string) bool {
	err := g.GenerateFile(ctx, m, path)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errors.ErrCodePreconditionNotMet):
		g.logger.Warn(errors.UserMessage(err), "path", path)
		return true
	default:
		g.logger.Error("generate diagram", "path", path, "err", err)
		return false
	}
}
