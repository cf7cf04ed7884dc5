// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package richtext converts Markdown into the HTML subset HipChat renders
// in room messages (a, b, i, strong, em, br, img, pre, code, lists, and
// tables). Block elements HipChat drops are rewritten: paragraphs become
// <br>-separated runs and headings become bold lines. Raw HTML in the
// source is omitted.
package richtext

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

var (
	converterInstance goldmark.Markdown
	converterOnce     sync.Once
)

func getConverter() goldmark.Markdown {
	converterOnce.Do(func() {
		converterInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(
					util.Prioritized(blockRenderer{}, 100),
				),
			),
		)
	})
	return converterInstance
}

// ToHTML renders markdown as message HTML.
func ToHTML(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var output bytes.Buffer
	if err := getConverter().Convert([]byte(markdown), &output); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(output.String()), nil
}

// blockRenderer overrides goldmark's HTML output for the block nodes
// HipChat does not render.
type blockRenderer struct{}

func (blockRenderer) RegisterFuncs(registerer renderer.NodeRendererFuncRegisterer) {
	registerer.Register(ast.KindParagraph, renderParagraph)
	registerer.Register(ast.KindHeading, renderHeading)
	registerer.Register(ast.KindThematicBreak, renderThematicBreak)
}

func renderParagraph(writer util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering && node.NextSibling() != nil {
		writer.WriteString("<br>\n")
	}
	return ast.WalkContinue, nil
}

func renderHeading(writer util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		writer.WriteString("<b>")
		return ast.WalkContinue, nil
	}
	writer.WriteString("</b>")
	if node.NextSibling() != nil {
		writer.WriteString("<br>\n")
	}
	return ast.WalkContinue, nil
}

func renderThematicBreak(writer util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		writer.WriteString("<br>\n")
	}
	return ast.WalkSkipChildren, nil
}
