// Package usage renders help text for registered commands. Every function
// is pure: it formats a signature and its binding strategy into a string
// and leaves printing to the caller.
package usage

import (
	"strings"

	"github.com/argbind/argbind/pkg/bind"
	"github.com/argbind/argbind/pkg/signature"
)

// CommandInfo is the slice of a registry entry the renderer needs. Name
// may be empty for single-command programs, where the command is implicit
// and its name never appears on the command line.
type CommandInfo struct {
	Name      string
	Signature *signature.Signature
	Kind      bind.Kind
	Doc       string
}

// Command renders the usage block for one command: a "Usage:" line
// followed by the doc text re-indented one tab, trimmed of blank lines.
func Command(program string, c CommandInfo) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(program)
	if c.Name != "" {
		b.WriteString(" ")
		b.WriteString(c.Name)
	}
	if repr := bind.ParamsRepr(c.Kind, c.Signature); repr != "" {
		b.WriteString(" ")
		b.WriteString(repr)
	}
	if doc := reindent(c.Doc, 1); doc != "" {
		b.WriteString("\n")
		b.WriteString(doc)
	}
	return b.String()
}

// Listing renders the full command listing, one block per command in
// registration order.
func Listing(program string, cmds []CommandInfo) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(program)
	b.WriteString(" [command] [args]\n")
	b.WriteString("Available commands:")
	for _, c := range cmds {
		b.WriteString("\n\t")
		b.WriteString(c.Name)
		if repr := bind.ParamsRepr(c.Kind, c.Signature); repr != "" {
			b.WriteString(" ")
			b.WriteString(repr)
		}
		if doc := reindent(c.Doc, 2); doc != "" {
			b.WriteString("\n")
			b.WriteString(doc)
		}
	}
	return b.String()
}

// reindent strips each doc line, drops blank lines and prefixes the rest
// with depth tabs.
func reindent(doc string, depth int) string {
	tabs := strings.Repeat("\t", depth)
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, tabs+line)
	}
	return strings.Join(lines, "\n")
}
