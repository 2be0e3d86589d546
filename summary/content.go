// WebsitePresentation - a hand-assembled one-page PDF summary
// Copyright (C) 2026  The WebsitePresentation Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package summary

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/PatrizioAcquadro/WebsitePresentation/layout"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Content is the text shown in a summary document.
type Content struct {
	// Lang is the natural language of the text.
	Lang language.Tag `yaml:"-"`

	layout.Document `yaml:",inline"`
}

type contentFile struct {
	Lang            string `yaml:"lang"`
	layout.Document `yaml:",inline"`
}

// DefaultContent returns the compiled-in content.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent decodes a YAML content description.
// Unknown fields are rejected.
func ParseContent(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f contentFile
	err := dec.Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("summary content: %w", err)
	}
	if f.Title == "" {
		return nil, errors.New("summary content: missing title")
	}
	for i, sec := range f.Sections {
		if sec.Heading == "" {
			return nil, fmt.Errorf("summary content: section %d has no heading", i+1)
		}
	}

	c := &Content{
		Lang:     language.Und,
		Document: f.Document,
	}
	if f.Lang != "" {
		c.Lang, err = language.Parse(f.Lang)
		if err != nil {
			return nil, fmt.Errorf("summary content: %w", err)
		}
	}
	return c, nil
}
