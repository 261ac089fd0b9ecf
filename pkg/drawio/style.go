package drawio

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/config"
	"github.com/matzehuels/seqdraw/pkg/errors"
	"github.com/matzehuels/seqdraw/pkg/layout"
)

// styleBuilder writes "key=value;" pairs in insertion order.
type styleBuilder struct {
	sb strings.Builder
}

func (b *styleBuilder) token(t string) *styleBuilder {
	b.sb.WriteString(t)
	b.sb.WriteByte(';')
	return b
}

func (b *styleBuilder) set(key, value string) *styleBuilder {
	b.sb.WriteString(key)
	b.sb.WriteByte('=')
	b.sb.WriteString(value)
	b.sb.WriteByte(';')
	return b
}

// setString sets key to value, as written, only when value is not blank.
func (b *styleBuilder) setString(key, value string) *styleBuilder {
	if !isBlank(value) {
		b.set(key, value)
	}
	return b
}

// setWidth sets key only when w is not nil.
func (b *styleBuilder) setWidth(key string, w *decimal.Decimal) *styleBuilder {
	if w != nil {
		b.set(key, w.String())
	}
	return b
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func (b *styleBuilder) String() string { return b.sb.String() }

// DescriptionStyle returns the style of the description text block.
func DescriptionStyle() string {
	var b styleBuilder
	return b.token("text").
		set("html", "1").
		set("strokeColor", "none").
		set("fillColor", "none").
		set("align", "left").
		set("verticalAlign", "bottom").
		set("whiteSpace", "wrap").
		set("rounded", "0").
		set("labelPosition", "center").
		set("verticalLabelPosition", "top").
		String()
}

// LifelineStyle returns the style of a lifeline. boxHeight is the height of
// the header box drawn at the top of the lifeline.
func LifelineStyle(s config.Style, boxHeight decimal.Decimal) string {
	var b styleBuilder
	return b.set("shape", "umlLifeline").
		set("perimeter", "lifelinePerimeter").
		set("whiteSpace", "wrap").
		set("html", "1").
		set("container", "1").
		set("collapsible", "0").
		set("recursiveResize", "0").
		set("outlineConnect", "0").
		set("size", boxHeight.String()).
		setWidth("strokeWidth", s.LineWidthOfLifeline).
		setString("strokeColor", s.LineColorOfLifeline).
		setString("fillColor", s.BoxColorOfLifeline).
		String()
}

// ActivationStyle returns the style of an activation box.
func ActivationStyle(s config.Style) string {
	var b styleBuilder
	return b.set("html", "1").
		set("points", "[]").
		set("perimeter", "orthogonalPerimeter").
		setWidth("strokeWidth", s.LineWidthOfActivation).
		setString("strokeColor", s.LineColorOfActivation).
		setString("fillColor", s.BoxColorOfActivation).
		String()
}

// MessageStyle returns the style of a message edge: the shared line
// overrides first, then the attributes of the message kind.
func MessageStyle(kind layout.MessageKind, s config.Style) (string, error) {
	var b styleBuilder
	b.setWidth("strokeWidth", s.LineWidthOfMessage).
		setString("strokeColor", s.LineColorOfMessage)

	switch kind {
	case layout.Request:
		b.set("endArrow", "block").
			set("html", "1").
			set("endFill", "1")
	case layout.Response:
		b.set("endArrow", "open").
			set("html", "1").
			set("dashed", "1").
			set("endFill", "0")
	case layout.Self:
		b.set("endArrow", "block").
			set("html", "1").
			set("rounded", "0").
			set("endFill", "1").
			set("align", "left").
			set("labelBackgroundColor", "none")
	case layout.Async:
		b.set("endArrow", "open").
			set("html", "1").
			set("endFill", "0")
	default:
		return "", errors.New(errors.ErrCodeInvalidMessageKind, "no style for %s", kind)
	}
	return b.String(), nil
}

// FontLabel wraps text in a <font> span carrying only the overridden
// attributes, in the order face, size, color. Without overrides text is
// returned unchanged.
func FontLabel(text string, f config.Font) string {
	var attrs strings.Builder
	if !isBlank(f.Face) {
		attrs.WriteString(` face="` + f.Face + `"`)
	}
	if f.Size != nil {
		attrs.WriteString(` style="font-size: ` + strconv.Itoa(*f.Size) + `px"`)
	}
	if !isBlank(f.Color) {
		attrs.WriteString(` color="` + f.Color + `"`)
	}
	if attrs.Len() == 0 {
		return text
	}
	return "<font" + attrs.String() + ">" + text + "</font>"
}
