package feed

import (
	"fmt"
	"html"
	"strings"
)

const (
	wxr10 = "1.0"
	wxr11 = "1.1"
	wxr12 = "1.2"
)

type testItem struct {
	ID         string
	Title      string
	Type       string
	Parent     string
	Status     string
	Slug       string
	Date       string
	Creator    string
	Content    string
	Categories []Category
	Meta       []Meta
}

func postItem(id, title string) testItem {
	return testItem{
		ID:      id,
		Title:   title,
		Type:    "post",
		Parent:  "0",
		Status:  "publish",
		Slug:    "post-" + id,
		Date:    "2010-06-01 10:00:00",
		Creator: "admin",
		Content: "Body of post " + id,
	}
}

func (ti testItem) render(prefix string) string {
	var b strings.Builder

	b.WriteString("\t<item>\n")
	fmt.Fprintf(&b, "\t\t<title>%s</title>\n", html.EscapeString(ti.Title))
	fmt.Fprintf(&b, "\t\t<link>https://blog.example.com/%s/</link>\n", ti.Slug)
	fmt.Fprintf(&b, "\t\t<dc:creator><![CDATA[%s]]></dc:creator>\n", ti.Creator)
	fmt.Fprintf(&b, "\t\t<guid isPermaLink=\"false\">https://blog.example.com/?p=%s</guid>\n", ti.ID)
	fmt.Fprintf(&b, "\t\t<content:encoded><![CDATA[%s]]></content:encoded>\n", ti.Content)
	fmt.Fprintf(&b, "\t\t<%[1]s:post_id>%[2]s</%[1]s:post_id>\n", prefix, ti.ID)
	fmt.Fprintf(&b, "\t\t<%[1]s:post_date>%[2]s</%[1]s:post_date>\n", prefix, ti.Date)
	fmt.Fprintf(&b, "\t\t<%[1]s:post_name>%[2]s</%[1]s:post_name>\n", prefix, ti.Slug)
	fmt.Fprintf(&b, "\t\t<%[1]s:status>%[2]s</%[1]s:status>\n", prefix, ti.Status)
	fmt.Fprintf(&b, "\t\t<%[1]s:post_parent>%[2]s</%[1]s:post_parent>\n", prefix, ti.Parent)
	fmt.Fprintf(&b, "\t\t<%[1]s:post_type>%[2]s</%[1]s:post_type>\n", prefix, ti.Type)
	for _, c := range ti.Categories {
		fmt.Fprintf(&b, "\t\t<category domain=\"%s\" nicename=\"n\"><![CDATA[%s]]></category>\n", c.Domain, c.Name)
	}
	for _, m := range ti.Meta {
		fmt.Fprintf(&b, "\t\t<%[1]s:postmeta>\n\t\t\t<%[1]s:meta_key>%[2]s</%[1]s:meta_key>\n\t\t\t<%[1]s:meta_value><![CDATA[%[3]s]]></%[1]s:meta_value>\n\t\t</%[1]s:postmeta>\n",
			prefix, m.Key, m.Value)
	}
	b.WriteString("\t</item>\n")

	return b.String()
}

// wxrDocument builds an export declaring the given WXR version under the
// "wp" prefix.
func wxrDocument(version string, items ...testItem) string {
	var body strings.Builder
	for _, item := range items {
		body.WriteString(item.render("wp"))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!-- generator="WordPress/3.0" created="2010-07-01 12:00" -->
<rss version="2.0"
	xmlns:excerpt="http://wordpress.org/export/%[1]s/excerpt/"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wfw="http://wellformedweb.org/CommentAPI/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:wp="http://wordpress.org/export/%[1]s/">
<channel>
	<title>Test Blog</title>
	<link>https://blog.example.com</link>
	<description>Just another blog</description>
	<wp:wxr_version>%[1]s</wp:wxr_version>
%[2]s</channel>
</rss>
`, version, body.String())
}
