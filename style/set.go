package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/balintv/txt2ppt/layout"
)

// Set assigns one option by dotted key, e.g. "font.primary.size" = "36pt".
// Keys without a section are taken as options ("mode" is "options.mode").
// Key matching ignores case and treats '_' like '-'.
func (o *Options) Set(key, value string) error {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
	parts := strings.Split(norm, ".")
	if len(parts) == 1 {
		parts = []string{"options", parts[0]}
	}
	value = strings.TrimSpace(value)

	var err error
	switch parts[0] {
	case "options":
		err = o.setOption(parts[1:], value)
	case "font":
		err = o.setFont(parts[1:], value)
	case "margin":
		err = o.setMargin(parts[1:], value)
	case "band":
		err = o.setBand(parts[1:], value)
	case "meta":
		err = o.setMeta(parts[1:], value)
	default:
		err = errUnknown
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidOption, key, value, err)
	}
	return nil
}

var errUnknown = errors.New("unknown key")

func (o *Options) setOption(path []string, value string) error {
	if len(path) != 1 {
		return errUnknown
	}
	g := &o.Layout.Geometry
	switch path[0] {
	case "mode":
		m, err := ParseMode(value)
		if err != nil {
			return err
		}
		o.Mode = m
		o.Layout.Mode = o.Config().Mode
		return nil
	case "widescreen":
		return parseBool(value, &o.Layout.Widescreen)
	case "shrink-to-fit", "shrink":
		return parseBool(value, &g.ShrinkToFit)
	case "align":
		switch strings.ToLower(value) {
		case "center", "centre", "ctr":
			g.Align = layout.AlignCenter
		case "left", "l":
			g.Align = layout.AlignLeft
		default:
			return fmt.Errorf("align must be center or left")
		}
		return nil
	case "align-center":
		var center bool
		if err := parseBool(value, &center); err != nil {
			return err
		}
		g.Align = layout.AlignLeft
		if center {
			g.Align = layout.AlignCenter
		}
		return nil
	case "background", "background-color":
		c, err := layout.ParseColor(value)
		if err != nil {
			return err
		}
		o.Layout.Background = c
		return nil
	case "preserve-blank-lines":
		return parseBool(value, &o.PreserveBlankLines)
	case "blank-as-separator":
		return parseBool(value, &o.BlankAsSeparator)
	case "blank-line-slide", "blank-line-is-own-slide":
		return parseBool(value, &o.BlankLineSlide)
	case "indent":
		return parseLength(value, layout.UnitCM, &g.Indent)
	case "first-line-indent":
		return parseLength(value, layout.UnitCM, &g.FirstLineIndent)
	default:
		return errUnknown
	}
}

func (o *Options) setFont(path []string, value string) error {
	if len(path) != 2 {
		return errUnknown
	}
	var t *layout.Typography
	switch layout.Role(path[0]) {
	case layout.RoleSingle:
		t = &o.Layout.Single
	case layout.RolePrimary:
		t = &o.Layout.Primary
	case layout.RoleSecondary:
		t = &o.Layout.Secondary
	default:
		return errUnknown
	}
	switch path[1] {
	case "family", "name", "font":
		t.Font = value
		return nil
	case "size":
		l, err := layout.ParseLength(value, layout.UnitPT)
		if err != nil {
			return err
		}
		t.Size = l.ToPT()
		return nil
	case "color", "colour":
		c, err := layout.ParseColor(value)
		if err != nil {
			return err
		}
		t.Color = c
		return nil
	case "bold":
		return parseBool(value, &t.Bold)
	case "italic":
		return parseBool(value, &t.Italic)
	default:
		return errUnknown
	}
}

func (o *Options) setMargin(path []string, value string) error {
	if len(path) != 1 {
		return errUnknown
	}
	m := &o.Layout.Geometry.Margin
	switch path[0] {
	case "top":
		return parseLength(value, layout.UnitCM, &m.Top)
	case "bottom":
		return parseLength(value, layout.UnitCM, &m.Bottom)
	case "left":
		return parseLength(value, layout.UnitCM, &m.Left)
	case "right":
		return parseLength(value, layout.UnitCM, &m.Right)
	default:
		return errUnknown
	}
}

func (o *Options) setBand(path []string, value string) error {
	if len(path) != 1 {
		return errUnknown
	}
	g := &o.Layout.Geometry
	switch path[0] {
	case "height":
		return parseLength(value, layout.UnitCM, &g.BandHeight)
	case "primary-offset":
		return parseLength(value, layout.UnitCM, &g.PrimaryOffset)
	case "secondary-offset":
		return parseLength(value, layout.UnitCM, &g.SecondaryOffset)
	default:
		return errUnknown
	}
}

func (o *Options) setMeta(path []string, value string) error {
	if len(path) != 1 {
		return errUnknown
	}
	m := &o.Layout.Meta
	switch path[0] {
	case "title":
		m.Title = value
	case "author":
		m.Author = value
	case "subject":
		m.Subject = value
	case "creator":
		m.Creator = value
	case "keywords":
		m.Keywords = nil
		for _, k := range strings.Split(value, ",") {
			if k = strings.TrimSpace(k); k != "" {
				m.Keywords = append(m.Keywords, k)
			}
		}
	default:
		return errUnknown
	}
	return nil
}

func parseBool(value string, dst *bool) error {
	switch strings.ToLower(value) {
	case "yes", "on":
		*dst = true
		return nil
	case "no", "off":
		*dst = false
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("expected a boolean")
	}
	*dst = b
	return nil
}

func parseLength(value string, fallback layout.Unit, dst *layout.Length) error {
	l, err := layout.ParseLength(value, fallback)
	if err != nil {
		return err
	}
	*dst = l
	return nil
}
