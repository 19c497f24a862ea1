package feed

import (
	"fmt"
	"slices"
)

const (
	metaLatitude  = "_wp_geo_latitude"
	metaLongitude = "_wp_geo_longitude"
)

// Transformer turns a WordPress export into the intermediate posts document.
type Transformer struct {
	parser    *Parser
	filterer  *Filterer
	generator *Generator
}

func NewTransformer(parser *Parser, filterer *Filterer, generator *Generator) *Transformer {
	return &Transformer{
		parser:    parser,
		filterer:  filterer,
		generator: generator,
	}
}

func (t *Transformer) Run(data []byte, opts Options) (*Result, error) {
	items, err := t.parser.Run(data)
	if err != nil {
		return nil, err
	}

	result := &Result{Items: len(items)}
	accepted := t.filterer.Run(items, opts, &result.Diagnostics)

	result.Posts = make([]Post, 0, len(accepted))
	for _, item := range accepted {
		result.Posts = append(result.Posts, t.extract(item, opts))
	}

	document, err := t.generator.Run(result.Posts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate posts document: %w", err)
	}
	result.Document = document

	return result, nil
}

func (t *Transformer) extract(item Item, opts Options) Post {
	post := Post{
		PublishedAt: Text(item.PostDate),
		Slug:        Text(item.Slug),
		Title:       Text(item.Title),
		Author:      Text(item.Creator),
		Link:        Text(item.Link),
		Body:        escapeBody(item.Content),
	}

	if opts.Disqus {
		// Thread identifier format of the standard WordPress Disqus plugin
		post.ThreadIdentifier = Text(item.PostID + " " + item.GUID)
	}

	if latitude, longitude, ok := geoLocation(item.Meta); ok {
		post.Location = Text(latitude + ", " + longitude)
	}

	post.Categories, post.Tags = classify(item.Categories, opts.CategoriesAsTags)

	if opts.Category != "" {
		post.Categories = appendUnique(post.Categories, Text(opts.Category).Markup())
	}

	return post
}

// geoLocation looks up the geotag pair in a single item's metadata. The last
// value wins when a key repeats.
func geoLocation(meta []Meta) (latitude, longitude string, ok bool) {
	var hasLatitude, hasLongitude bool
	for _, m := range meta {
		switch m.Key {
		case metaLatitude:
			latitude, hasLatitude = m.Value, true
		case metaLongitude:
			longitude, hasLongitude = m.Value, true
		}
	}
	return latitude, longitude, hasLatitude && hasLongitude
}

func classify(categories []Category, categoriesAsTags bool) (cats, tags []Fragment) {
	cats = []Fragment{}
	tags = []Fragment{}

	for _, category := range categories {
		if categoriesAsTags {
			tags = appendUnique(tags, category.Name)
			continue
		}

		switch category.Domain {
		case "tag":
			tags = appendUnique(tags, category.Name)
		case "category":
			cats = appendUnique(cats, category.Name)
		}
	}

	return cats, tags
}

func appendUnique(names []Fragment, name Fragment) []Fragment {
	if slices.Contains(names, name) {
		return names
	}
	return append(names, name)
}
