package feed

// Export record types

type Category struct {
	Domain string
	Name   Fragment // category text is already entity-escaped in exports
}

type Meta struct {
	Key   string
	Value string
}

type Item struct {
	PostID   string
	GUID     string
	Type     string // post, page, attachment, ...
	ParentID string
	Title    string
	Link     string
	Creator  string
	Content  string
	PostDate string
	Slug     string
	Status   string // publish, draft, ...

	Categories []Category
	Meta       []Meta
}

// Intermediate document types

type Post struct {
	ThreadIdentifier Text // empty unless comment threads are requested
	PublishedAt      Text
	Slug             Text
	Title            Text
	Author           Text
	Link             Text
	Location         Text // "<lat>, <lon>", empty when either is missing
	Categories       []Fragment
	Tags             []Fragment
	Body             Fragment
}

// Options controls which records are accepted and how they are classified.
type Options struct {
	IgnoreEmptyTitle bool
	Disqus           bool
	Category         string // applied to every post when non-empty
	CategoriesAsTags bool
}

type Result struct {
	Document    string
	Posts       []Post
	Items       int
	Diagnostics Diagnostics
}
