package vdom

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an x/net/html element tree.
// Attributes are emitted in name order so output is stable.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, k := range sortedKeys(n.Attributes) {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: attrString(n.Attributes[k])})
	}
	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, c := range n.Children {
		if child := ToHTMLNode(c); child != nil {
			el.AppendChild(child)
		}
	}
	return el
}

// RenderHTML writes the markup for n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, ToHTMLNode(n)); err != nil {
		return errors.Wrapf(err, "render <%s>", n.Tag)
	}
	return nil
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDocument writes a complete HTML5 page with n mounted inside the
// element identified by mountID (an "#id" selector or a bare id).
func RenderDocument(w io.Writer, title, mountID string, n *VNode) error {
	id := mountID
	if len(id) > 0 && id[0] == '#' {
		id = id[1:]
	}

	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	meta := &html.Node{Type: html.ElementNode, Data: "meta", DataAtom: atom.Meta,
		Attr: []html.Attribute{{Key: "charset", Val: "utf-8"}}}
	titleEl := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(meta)
	head.AppendChild(titleEl)

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	mount := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div,
		Attr: []html.Attribute{{Key: "id", Val: id}}}
	if child := ToHTMLNode(n); child != nil {
		mount.AppendChild(child)
	}
	body.AppendChild(mount)
	root.AppendChild(head)
	root.AppendChild(body)

	if err := html.Render(w, &html.Node{Type: html.DoctypeNode, Data: "html"}); err != nil {
		return errors.Wrap(err, "render doctype")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "render document")
	}
	if err := html.Render(w, root); err != nil {
		return errors.Wrap(err, "render document")
	}
	return nil
}

// HTMLTarget is a Target that writes every frame as markup, one frame per
// line. It is used by native builds, where there is no DOM to patch.
type HTMLTarget struct {
	W      io.Writer
	Frames int
}

// NewHTMLTarget creates a target writing to w.
func NewHTMLTarget(w io.Writer) *HTMLTarget {
	return &HTMLTarget{W: w}
}

func (t *HTMLTarget) Mount(n *VNode) error {
	return t.frame(n)
}

func (t *HTMLTarget) Patch(_, next *VNode) error {
	return t.frame(next)
}

func (t *HTMLTarget) frame(n *VNode) error {
	if err := RenderHTML(t.W, n); err != nil {
		return err
	}
	if _, err := io.WriteString(t.W, "\n"); err != nil {
		return errors.Wrap(err, "write frame")
	}
	t.Frames++
	return nil
}
