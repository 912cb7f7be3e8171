// Package markup converts HTML option-list fragments into selector
// options, using golang.org/x/net/html as the underlying parser
// implementation.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/AYColumbia/overlaykit/selector"
)

// dataPrefix marks attributes carried into option metadata.
const dataPrefix = "data-"

// descriptionAttr is the data attribute mapped onto Option.Description.
const descriptionAttr = "data-description"

// groupKey is the metadata key recording the enclosing optgroup label.
const groupKey = "group"

// ParseOptions parses an HTML fragment — a <select> element or a bare
// list of <option> elements — into selector options.
//
// Each option's text becomes its Label (whitespace collapsed); the
// value attribute becomes its Value, falling back to the label when
// absent. A disabled attribute disables the option. data-description
// maps to Description, and remaining data-* attributes land in
// Metadata with the prefix stripped. Options inside an <optgroup> get
// the group label recorded under Metadata["group"].
//
// Malformed input degrades the way the HTML5 parser prescribes rather
// than failing; an error is returned only when parsing itself fails.
func ParseOptions(fragment string) ([]selector.Option, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var options []selector.Option
	collectOptions(doc, "", &options)
	return options, nil
}

// collectOptions walks the parsed tree gathering option elements,
// tracking the label of the nearest enclosing optgroup.
func collectOptions(n *html.Node, group string, out *[]selector.Option) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Option:
			*out = append(*out, parseOption(n, group))
			return
		case atom.Optgroup:
			group = attrValue(n, "label")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectOptions(c, group, out)
	}
}

// parseOption builds one selector.Option from an <option> element.
func parseOption(n *html.Node, group string) selector.Option {
	opt := selector.Option{
		Label: collapseText(n),
	}

	var metadata map[string]string
	for _, a := range n.Attr {
		switch {
		case a.Key == "value":
			opt.Value = a.Val
		case a.Key == "disabled":
			opt.Disabled = true
		case a.Key == descriptionAttr:
			opt.Description = a.Val
		case strings.HasPrefix(a.Key, dataPrefix):
			if metadata == nil {
				metadata = make(map[string]string)
			}
			metadata[strings.TrimPrefix(a.Key, dataPrefix)] = a.Val
		}
	}

	if group != "" {
		if metadata == nil {
			metadata = make(map[string]string)
		}
		metadata[groupKey] = group
	}
	opt.Metadata = metadata

	if opt.Value == nil {
		opt.Value = opt.Label
	}
	return opt
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapseText returns the element's text content with runs of
// whitespace collapsed to single spaces.
func collapseText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
