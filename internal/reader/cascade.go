/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package reader

import (
	"strconv"
	"strings"

	"github.com/wordengine/docflow/domain"
	"github.com/wordengine/docflow/internal/stylecascade"
	xmlstructs "github.com/wordengine/docflow/internal/xml"
	pkgcolor "github.com/wordengine/docflow/pkg/color"
)

// buildThemePalette reads the color scheme out of the theme part so
// theme-color references in styles and runs can resolve to hex.
func buildThemePalette(parsed *ParsedPackage) map[string]string {
	palette := map[string]string{}
	if parsed == nil {
		return palette
	}
	var themeData []byte
	for path, data := range parsed.ThemeParts {
		if strings.HasSuffix(path, "theme1.xml") || themeData == nil {
			themeData = data
		}
	}
	if len(themeData) == 0 {
		return palette
	}
	part, err := xmlstructs.NewRawPart("word/theme/theme1.xml", themeData)
	if err != nil {
		return palette
	}
	for _, slot := range part.FindElements("//a:clrScheme/*") {
		name := slot.Tag
		for _, child := range slot.ChildElements() {
			switch child.Tag {
			case "srgbClr":
				if v := child.SelectAttrValue("val", ""); v != "" {
					palette[name] = strings.ToUpper(v)
				}
			case "sysClr":
				if v := child.SelectAttrValue("lastClr", ""); v != "" {
					palette[name] = strings.ToUpper(v)
				}
			}
		}
	}
	return palette
}

// buildStyleSheet parses word/styles.xml's definitions into a cascade
// Sheet. Only the run-property surface the cascade resolves is read;
// everything else in a style stays untouched in the preserved part.
func buildStyleSheet(parsed *ParsedPackage, palette map[string]string) *stylecascade.Sheet {
	if parsed == nil || parsed.StylesTree == nil {
		return stylecascade.NewSheet(nil)
	}
	var defs []*stylecascade.StyleDef
	for _, styleElem := range parsed.StylesTree.Children {
		if styleElem == nil || styleElem.Name.Local != "style" {
			continue
		}
		styleID, _ := getAttr(styleElem, "styleId")
		if styleID == "" {
			continue
		}
		styleType, _ := getAttr(styleElem, "type")
		def := &stylecascade.StyleDef{ID: styleID, Type: styleType}
		if basedOn := findChild(styleElem, "basedOn"); basedOn != nil {
			def.BasedOn, _ = getAttr(basedOn, "val")
		}
		if link := findChild(styleElem, "link"); link != nil {
			def.Link, _ = getAttr(link, "val")
		}
		if rPr := findChild(styleElem, "rPr"); rPr != nil {
			def.Run = propertySetFromElement(rPr, palette)
		}
		defs = append(defs, def)
	}
	return stylecascade.NewSheet(defs)
}

// propertySetFromElement converts a w:rPr element into the cascade's
// partial property record. Theme colors resolve through the palette
// with tint/shade blending; "auto" means inherit and stays nil.
func propertySetFromElement(props *Element, palette map[string]string) stylecascade.PropertySet {
	var ps stylecascade.PropertySet
	if props == nil {
		return ps
	}

	onOff := func(local string) *bool {
		elem := findChild(props, local)
		if elem == nil {
			return nil
		}
		if val, ok := parseOnOff(elem); ok {
			return &val
		}
		return nil
	}
	ps.Bold = onOff("b")
	ps.Italic = onOff("i")
	ps.Strike = onOff("strike")

	if u := findChild(props, "u"); u != nil {
		val, ok := getAttr(u, "val")
		if !ok || val == "" {
			val = "single"
		}
		ps.Underline = &val
	}

	if colorElem := findChild(props, "color"); colorElem != nil {
		if hex := resolveColorElement(colorElem, palette); hex != "" {
			ps.Color = &hex
		}
	}

	if hl := findChild(props, "highlight"); hl != nil {
		if val, ok := getAttr(hl, "val"); ok && val != "" && !strings.EqualFold(val, "none") {
			ps.Highlight = &val
		}
	}

	if sz := findChild(props, "sz"); sz != nil {
		if val, ok := getAttr(sz, "val"); ok {
			if n, err := strconv.Atoi(val); err == nil {
				ps.SizeHalfPoints = &n
			}
		}
	}

	if fonts := findChild(props, "rFonts"); fonts != nil {
		strAttrPtr := func(local string) *string {
			if val, ok := getAttr(fonts, local); ok && val != "" {
				return &val
			}
			return nil
		}
		ps.FontASCII = strAttrPtr("ascii")
		ps.FontHAnsi = strAttrPtr("hAnsi")
		ps.FontEastAsia = strAttrPtr("eastAsia")
		ps.FontCS = strAttrPtr("cs")
		ps.FontHint = strAttrPtr("hint")
	}

	return ps
}

// resolveColorElement turns a w:color element into a concrete 6-hex
// value: an explicit val wins unless it is "auto" (inherit); a theme
// color reference resolves through the palette with tint/shade.
func resolveColorElement(colorElem *Element, palette map[string]string) string {
	if theme, ok := getAttr(colorElem, "themeColor"); ok && theme != "" {
		tint := hexByteAttr(colorElem, "themeTint")
		shade := hexByteAttr(colorElem, "themeShade")
		if hex, ok := stylecascade.ResolveThemeColor(palette, theme, tint, shade); ok {
			return hex
		}
	}
	if val, ok := getAttr(colorElem, "val"); ok && val != "" && !strings.EqualFold(val, "auto") {
		return strings.ToUpper(val)
	}
	return ""
}

func hexByteAttr(elem *Element, local string) uint8 {
	if val, ok := getAttr(elem, local); ok && val != "" {
		if n, err := strconv.ParseUint(val, 16, 8); err == nil {
			return uint8(n)
		}
	}
	return 0
}

// applyPropertySet writes a resolved style layer onto a run; the
// caller applies direct formatting afterwards so it overrides per the
// cascade order.
func applyPropertySet(run domain.Run, ps stylecascade.PropertySet) {
	if ps.Bold != nil {
		_ = run.SetBold(*ps.Bold)
	}
	if ps.Italic != nil {
		_ = run.SetItalic(*ps.Italic)
	}
	if ps.Strike != nil {
		_ = run.SetStrike(*ps.Strike)
	}
	if ps.Underline != nil {
		if style, ok := mapUnderlineStyle(*ps.Underline); ok {
			_ = run.SetUnderline(style)
		}
	}
	if ps.Color != nil {
		if clr, err := pkgcolor.FromHex(*ps.Color); err == nil {
			_ = run.SetColor(clr)
		}
	}
	if ps.SizeHalfPoints != nil {
		_ = run.SetSize(*ps.SizeHalfPoints)
	}
	if ps.FontASCII != nil || ps.FontHAnsi != nil || ps.FontEastAsia != nil || ps.FontCS != nil {
		font := run.Font()
		if ps.FontASCII != nil {
			font.Name = *ps.FontASCII
		} else if ps.FontHAnsi != nil {
			font.Name = *ps.FontHAnsi
		}
		if ps.FontEastAsia != nil {
			font.EastAsia = *ps.FontEastAsia
		}
		if ps.FontCS != nil {
			font.CS = *ps.FontCS
		}
		_ = run.SetFont(font)
	}
	if ps.Highlight != nil {
		if hl, ok := mapHighlightColor(*ps.Highlight); ok {
			_ = run.SetHighlight(hl)
		}
	}
}
