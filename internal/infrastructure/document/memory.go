// Package document provides an in-memory web document used to render the
// branding a config produces and as a sink in tests.
package document

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

// Memory is an in-memory document root plus head.
// It implements port.DocumentStyleSink.
type Memory struct {
	mu         sync.RWMutex
	attributes map[string]string
	properties map[string]string
	order      []string // property insertion order
	fontFaces  []entity.FontFace
	mutations  int
}

// NewMemory creates an empty document.
func NewMemory() *Memory {
	return &Memory{
		attributes: make(map[string]string),
		properties: make(map[string]string),
	}
}

// SetAttribute implements port.DocumentStyleSink.
func (m *Memory) SetAttribute(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attributes[name] = value
	m.mutations++
	return nil
}

// SetProperty implements port.DocumentStyleSink.
func (m *Memory) SetProperty(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.properties[name]; !ok {
		m.order = append(m.order, name)
	}
	m.properties[name] = value
	m.mutations++
	return nil
}

// AppendFontFace implements port.DocumentStyleSink.
// A declaration with the same family replaces the previous one in place.
func (m *Memory) AppendFontFace(_ context.Context, face entity.FontFace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations++
	for i, existing := range m.fontFaces {
		if existing.Family == face.Family {
			m.fontFaces[i] = face
			return nil
		}
	}
	m.fontFaces = append(m.fontFaces, face)
	return nil
}

// Attribute returns a root attribute.
func (m *Memory) Attribute(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.attributes[name]
	return v, ok
}

// Property returns a root custom property.
func (m *Memory) Property(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.properties[name]
	return v, ok
}

// FontFaces returns a copy of the head's font-face declarations.
func (m *Memory) FontFaces() []entity.FontFace {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.FontFace, len(m.fontFaces))
	copy(out, m.fontFaces)
	return out
}

// Mutations counts every write made to the document.
func (m *Memory) Mutations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mutations
}

// Stylesheet renders the custom properties as a :root rule followed by the
// font-face declarations.
func (m *Memory) Stylesheet() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sb strings.Builder
	if len(m.order) > 0 {
		sb.WriteString(":root {\n")
		for _, name := range m.order {
			fmt.Fprintf(&sb, "  %s: %s;\n", name, m.properties[name])
		}
		sb.WriteString("}\n")
	}
	for _, face := range m.fontFaces {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(face.CSS())
	}
	return sb.String()
}

// RootTag renders the opening <html> tag with sorted attributes.
func (m *Memory) RootTag() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.attributes))
	for name := range m.attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("<html")
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%q", name, m.attributes[name])
	}
	sb.WriteString(">")
	return sb.String()
}
