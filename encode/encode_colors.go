package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	NullColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]*color.Color
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]*color.Color{
			KeyColor:     color.RGB(128, 168, 196),
			StringColor:  color.RGB(8, 196, 16),
			NumberColor:  color.RGB(128, 216, 236),
			BoolColor:    color.New(color.FgCyan),
			NullColor:    color.RGB(168, 0, 196),
			CommentColor: color.New(color.FgBlue),
		},
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	col := c.Map[a]
	if col == nil {
		return c.Default(s)
	}
	return col.Sprint(s)
}

// property splits the escape sequences col wraps around text into the
// prefix and suffix the YAML printer expects.
func (c *Colors) property(a ColorAttr) printer.PrintFunc {
	return func() *printer.Property {
		col := c.Map[a]
		if col == nil {
			return &printer.Property{}
		}
		pre, suf, _ := strings.Cut(col.Sprint("\x00"), "\x00")
		return &printer.Property{Prefix: pre, Suffix: suf}
	}
}

// colorize highlights YAML or JSON text (JSON is lexed as YAML).
func (c *Colors) colorize(d []byte) []byte {
	p := &printer.Printer{
		MapKey:  c.property(KeyColor),
		String:  c.property(StringColor),
		Number:  c.property(NumberColor),
		Bool:    c.property(BoolColor),
		Comment: c.property(CommentColor),
	}
	return []byte(p.PrintTokens(lexer.Tokenize(string(d))))
}
