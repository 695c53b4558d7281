package burst

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-burst/internal/blocks"
	"github.com/alnah/go-burst/internal/logging"
	"github.com/alnah/go-burst/internal/resolve"
)

// Compile-time interface implementation check.
var _ blocks.Converter = (*blocks.GoldmarkConverter)(nil)

// Converter chains inline rendering, reference resolution, the block layer
// and the document wrapper. Create with NewConverter.
type Converter struct {
	renderer *Renderer
	blocks   blocks.Converter
}

// NewConverter creates a Converter. Options are those of NewRenderer.
func NewConverter(opts ...Option) (*Converter, error) {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}
	c := &Converter{renderer: renderer, blocks: cfg.blocks}
	if c.blocks == nil {
		c.blocks = blocks.NewGoldmarkConverter()
	}
	return c, nil
}

// Renderer returns the inline renderer c uses.
func (c *Converter) Renderer() *Renderer {
	return c.renderer
}

// Convert runs the pipeline on input.Text.
// The context is checked between stages and cancels the block layer.
// Stage timings are logged at debug level through the context logger.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Inline markup
	start := time.Now()
	out, err := c.renderer.Render(input.Text)
	if err != nil {
		return nil, fmt.Errorf("rendering inline markup: %w", err)
	}
	logger.Debug("stage done", logging.FieldStage, "inline", logging.FieldBytes, len(out), logging.FieldDuration, time.Since(start))

	// References
	if input.Table != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start = time.Now()
		var opts []resolve.Option
		if input.Lenient {
			opts = append(opts, resolve.WithLenient())
		}
		out, err = resolve.New(*input.Table, opts...).Resolve(out)
		if err != nil {
			return nil, fmt.Errorf("resolving references: %w", err)
		}
		logger.Debug("stage done", logging.FieldStage, "resolve", logging.FieldBytes, len(out), logging.FieldDuration, time.Since(start))
	}

	// Blocks
	if input.Blocks || input.Document != nil {
		start = time.Now()
		out, err = c.blocks.ToHTML(ctx, out)
		if err != nil {
			return nil, fmt.Errorf("converting blocks: %w", err)
		}
		logger.Debug("stage done", logging.FieldStage, "blocks", logging.FieldBytes, len(out), logging.FieldDuration, time.Since(start))
	}

	if input.Document != nil {
		out = blocks.Document(input.Document.Title, out)
	}

	return &ConvertResult{HTML: out}, nil
}
