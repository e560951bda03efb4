// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package buildfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/drushgo/internal/ctxlog"
	"github.com/specialistvlad/drushgo/internal/fsutil"
)

// Extensions recognised when a directory is loaded.
var Extensions = []string{".hcl", ".hcl.json"}

// Kind tells the block types apart.
type Kind int

const (
	KindProperty Kind = iota
	KindTask
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindTask {
		return "drush"
	}
	return "property"
}

// Block is one top-level block, not yet evaluated.
type Block struct {
	Kind  Kind
	Name  string
	File  string
	Range hcl.Range
	body  hcl.Body
}

// File is the ordered content of every loaded build file.
type File struct {
	Paths  []string
	Blocks []*Block
}

// Tasks returns only the drush blocks.
func (f *File) Tasks() []*Block {
	var out []*Block
	for _, b := range f.Blocks {
		if b.Kind == KindTask {
			out = append(out, b)
		}
	}
	return out
}

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "property", LabelNames: []string{"name"}},
		{Type: "drush", LabelNames: []string{"name"}},
	},
}

// Load parses every build file found under paths. Directories are searched
// recursively; files keep lexical order and blocks keep source order.
func Load(ctx context.Context, paths ...string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build file loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No build files found.", "paths", paths)
	}

	parser := hclparse.NewParser()
	out := &File{Paths: files}
	for _, path := range files {
		blocks, err := loadFile(parser, path)
		if err != nil {
			return nil, err
		}
		out.Blocks = append(out.Blocks, blocks...)
		logger.Debug("Loaded build file.", "file", path, "blocks", len(blocks))
	}

	logger.Debug("Build files loaded.", "files", len(files), "blocks", len(out.Blocks))
	return out, nil
}

// Parse reads a single in-memory HCL document. filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse build file %s: %w", filename, diags)
	}
	blocks, err := blocksOf(hclFile, filename)
	if err != nil {
		return nil, err
	}
	return &File{Paths: []string{filename}, Blocks: blocks}, nil
}

func loadFile(parser *hclparse.Parser, path string) ([]*Block, error) {
	var (
		hclFile *hcl.File
		diags   hcl.Diagnostics
	)
	if strings.HasSuffix(path, ".json") {
		hclFile, diags = parser.ParseJSONFile(path)
	} else {
		hclFile, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse build file %s: %w", path, diags)
	}
	return blocksOf(hclFile, path)
}

func blocksOf(hclFile *hcl.File, path string) ([]*Block, error) {
	content, diags := hclFile.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode build file %s: %w", path, diags)
	}

	blocks := make([]*Block, 0, len(content.Blocks))
	for _, b := range content.Blocks {
		kind := KindProperty
		if b.Type == "drush" {
			kind = KindTask
		}
		blocks = append(blocks, &Block{
			Kind:  kind,
			Name:  b.Labels[0],
			File:  path,
			Range: b.DefRange,
			body:  b.Body,
		})
	}
	return blocks, nil
}
