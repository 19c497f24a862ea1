package feed

import (
	"bytes"
	"fmt"

	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"
)

// ParseError reports an export that could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to open or parse XML file: %v", e.Err)
	}
	return fmt.Sprintf("unable to open or parse XML file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Parser struct {
	rssParser *rss.Parser
}

func NewParser() *Parser {
	return &Parser{
		rssParser: &rss.Parser{},
	}
}

func (p *Parser) Run(data []byte) ([]Item, error) {
	prefixes, err := exportPrefixes(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	feed, err := p.rssParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("failed to parse export: %w", err)}
	}

	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, p.normalizeItem(item, prefixes))
	}

	return items, nil
}

func (p *Parser) normalizeItem(item *rss.Item, prefixes []string) Item {
	normalized := Item{
		Title:   item.Title,
		Link:    item.Link,
		Content: item.Content,
	}

	if item.GUID != nil {
		normalized.GUID = item.GUID.Value
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		normalized.Creator = item.DublinCoreExt.Creator[0]
	}

	for _, category := range item.Categories {
		if category == nil {
			continue
		}
		normalized.Categories = append(normalized.Categories, Category{
			Domain: category.Domain,
			Name:   Fragment(category.Value),
		})
	}

	wp := p.exportElements(item.Extensions, prefixes)
	normalized.Type = firstValue(wp, "post_type")
	normalized.ParentID = firstValue(wp, "post_parent")
	normalized.PostDate = firstValue(wp, "post_date")
	normalized.Slug = firstValue(wp, "post_name")
	normalized.Status = firstValue(wp, "status")
	normalized.PostID = firstValue(wp, "post_id")

	for _, meta := range wp["postmeta"] {
		normalized.Meta = append(normalized.Meta, Meta{
			Key:   firstValue(meta.Children, "meta_key"),
			Value: firstValue(meta.Children, "meta_value"),
		})
	}

	return normalized
}

// exportElements picks the item's elements from the first export namespace
// that has any.
func (p *Parser) exportElements(extensions ext.Extensions, prefixes []string) map[string][]ext.Extension {
	for _, prefix := range prefixes {
		if elements := extensions[prefix]; len(elements) > 0 {
			return elements
		}
	}
	return nil
}

func firstValue(elements map[string][]ext.Extension, name string) string {
	matches := elements[name]
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}
