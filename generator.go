package sprintreport

import (
	"context"
	"fmt"
)

// Result is the output of one generation.
type Result struct {
	// Filename is the derived output file name, without a directory.
	Filename string
	// Document holds the serialized document bytes.
	Document []byte
	// Tree is the assembled document tree, useful for inspection.
	Tree *DocumentTree
	// Fingerprint identifies the tree; equal content and style give
	// equal fingerprints.
	Fingerprint string
}

// Generator turns content records into report documents.
// A Generator is safe for concurrent use.
type Generator struct {
	style     StyleConfig
	newWriter WriterFactory
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithStyle replaces the default style configuration.
func WithStyle(style StyleConfig) GeneratorOption {
	return func(g *Generator) {
		g.style = style
	}
}

// WithWriterFactory replaces the DOCX writer.
func WithWriterFactory(f WriterFactory) GeneratorOption {
	return func(g *Generator) {
		g.newWriter = f
	}
}

// NewGenerator creates a Generator using DefaultStyle and the DOCX writer.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		style:     DefaultStyle(),
		newWriter: NewDocxWriter,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Style returns the generator's style configuration.
func (g *Generator) Style() StyleConfig {
	return g.style
}

// Generate assembles and renders content. The context is checked
// between stages. Nothing is written to disk.
func (g *Generator) Generate(ctx context.Context, content *Content) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, err := Assemble(content, g.style)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fingerprint, err := tree.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("fingerprinting tree: %w", err)
	}

	doc, err := Render(tree, g.style, g.newWriter)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Filename:    tree.Filename,
		Document:    doc,
		Tree:        tree,
		Fingerprint: fingerprint,
	}, nil
}
