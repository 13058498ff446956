// Package dom queries rendered HTML the way a user finds things on a page:
// by label text, role, test id and visible text.
package dom

import (
	"regexp"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Screen is the body of a parsed HTML document.
type Screen struct {
	t    testing.TB
	root *html.Node
}

func Parse(t testing.TB, body string) *Screen {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return &Screen{t: t, root: findBody(doc)}
}

// findBody returns the body element; queries never look into the head.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	if n.Parent == nil {
		return n
	}
	return nil
}

// Element wraps one node of the document.
type Element struct {
	*html.Node
}

func (e Element) Attr(name string) string {
	for _, a := range e.Node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Text is the whitespace-normalised text content of e and its descendants.
func (e Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.Node)
	return normalize(b.String())
}

// Value is what a form control currently holds.
func (e Element) Value() string {
	if e.DataAtom == atom.Textarea {
		return e.Text()
	}
	return e.Attr("value")
}

// ownText joins only the direct text children, so an element matches by text
// only when the text is its own and not a descendant's.
func (e Element) ownText() string {
	var b strings.Builder
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return normalize(b.String())
}

func (s *Screen) all(match func(Element) bool) []Element {
	var out []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if e := (Element{n}); match(e) {
				out = append(out, e)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(s.root)
	return out
}

func (s *Screen) one(what string, found []Element) Element {
	s.t.Helper()
	if len(found) != 1 {
		s.t.Fatalf("expected exactly one element %s, found %d", what, len(found))
	}
	return found[0]
}

// QueryAllByTestID returns every element whose data-testid equals id.
func (s *Screen) QueryAllByTestID(id string) []Element {
	return s.all(func(e Element) bool { return e.Attr("data-testid") == id })
}

// QueryByTestID returns the element with data-testid id, if any.
func (s *Screen) QueryByTestID(id string) (Element, bool) {
	found := s.QueryAllByTestID(id)
	if len(found) == 0 {
		return Element{}, false
	}
	return found[0], true
}

// QueryAllByText returns elements whose own text equals text.
func (s *Screen) QueryAllByText(text string) []Element {
	return s.all(func(e Element) bool { return e.ownText() == text })
}

// QueryAllByTextMatch returns elements whose own text matches re.
func (s *Screen) QueryAllByTextMatch(re *regexp.Regexp) []Element {
	return s.all(func(e Element) bool {
		own := e.ownText()
		return own != "" && re.MatchString(own)
	})
}

// GetAllByRole supports the roles the contact form uses.
func (s *Screen) GetAllByRole(role string) []Element {
	return s.all(func(e Element) bool {
		if r := e.Attr("role"); r != "" {
			return r == role
		}
		switch role {
		case "button":
			return e.DataAtom == atom.Button ||
				(e.DataAtom == atom.Input && (e.Attr("type") == "submit" || e.Attr("type") == "button"))
		case "heading":
			switch e.DataAtom {
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				return true
			}
		case "textbox":
			return e.DataAtom == atom.Textarea ||
				(e.DataAtom == atom.Input && (e.Attr("type") == "" || e.Attr("type") == "text" || e.Attr("type") == "email"))
		}
		return false
	})
}

func (s *Screen) GetByRole(role string) Element {
	s.t.Helper()
	return s.one("with role "+role, s.GetAllByRole(role))
}

// GetByLabelText finds the control associated with the label matching re,
// through the label's for attribute.
func (s *Screen) GetByLabelText(re *regexp.Regexp) Element {
	s.t.Helper()
	labels := s.all(func(e Element) bool {
		return e.DataAtom == atom.Label && re.MatchString(e.Text())
	})
	label := s.one("labelled "+re.String(), labels)

	id := label.Attr("for")
	return s.one("with id "+id, s.all(func(e Element) bool { return id != "" && e.Attr("id") == id }))
}

// FormValues returns the name and value of every control in the form holding el,
// as a browser would post them.
func (s *Screen) FormValues(el Element) map[string]string {
	s.t.Helper()
	form := el.Node
	for form != nil && form.DataAtom != atom.Form {
		form = form.Parent
	}
	if form == nil {
		s.t.Fatalf("element is not inside a form")
	}

	values := map[string]string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Input || n.DataAtom == atom.Textarea) {
			if e := (Element{n}); e.Attr("name") != "" {
				values[e.Attr("name")] = e.Value()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(form)
	return values
}

// FormAction is the action attribute of the form holding el.
func FormAction(el Element) string {
	for n := el.Node; n != nil; n = n.Parent {
		if n.DataAtom == atom.Form {
			return Element{n}.Attr("action")
		}
	}
	return ""
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
