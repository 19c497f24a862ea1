package feed

import (
	"bytes"
)

type markup interface {
	Markup() Fragment
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(posts []Post) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n<posts>\n")

	for _, post := range posts {
		g.writePost(&buf, post)
	}

	buf.WriteString("</posts>\n")

	return buf.String(), nil
}

func (g *Generator) writePost(buf *bytes.Buffer, post Post) {
	buf.WriteString("  <post")
	if post.ThreadIdentifier != "" {
		g.writeAttribute(buf, "disqus_thread_identifier", post.ThreadIdentifier)
	}
	g.writeAttribute(buf, "published_at", post.PublishedAt)
	g.writeAttribute(buf, "slug", post.Slug)
	buf.WriteString(">\n")

	g.writeElement(buf, "title", post.Title, 4)
	g.writeElement(buf, "author", post.Author, 4)
	if post.Location != "" {
		g.writeElement(buf, "location", post.Location, 4)
	}

	buf.WriteString("    <categories>\n")
	for _, category := range post.Categories {
		g.writeElement(buf, "category", category, 6)
	}
	buf.WriteString("    </categories>\n")

	buf.WriteString("    <tags>\n")
	for _, tag := range post.Tags {
		g.writeElement(buf, "tag", tag, 6)
	}
	buf.WriteString("    </tags>\n")

	buf.WriteString("    <Page>\n")
	buf.WriteString("      <Area name=\"blog-body\">\n")
	buf.WriteString("        <Slot type=\"foreignHtml\">\n")
	g.writeElement(buf, "value", post.Body, 10)
	buf.WriteString("        </Slot>\n")
	buf.WriteString("      </Area>\n")
	buf.WriteString("    </Page>\n")

	buf.WriteString("  </post>\n")
}

func (g *Generator) writeAttribute(buf *bytes.Buffer, name string, value markup) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString("=\"")
	buf.WriteString(string(value.Markup()))
	buf.WriteString("\"")
}

// writeElement writes value through its Markup method, so Text is escaped
// and Fragment is written as is. Empty values still produce the element.
func (g *Generator) writeElement(buf *bytes.Buffer, tag string, value markup, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	buf.WriteString(string(value.Markup()))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
