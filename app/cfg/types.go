package cfg

type Cfg struct {
	// Downstream target
	Env        string
	Connection string

	// Source export and transformation switches
	XMLPath          string
	AuthorsPath      string
	Clear            bool
	IgnoreEmptyTitle bool
	Disqus           bool
	DefaultUsername  string
	Category         string
	CategoriesAsTags bool
	TagToEntity      bool
	SkipConfirmation bool

	// Hand-off
	ImporterConfig string
	OutputPath     string

	// Application metadata
	Debug   bool
	Version string
}
