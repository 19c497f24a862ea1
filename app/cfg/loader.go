package cfg

import (
	"cmp"
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Downstream target
	Env        string `long:"env" env:"WP_IMPORT_ENV" default:"dev" description:"The environment"`
	Connection string `long:"connection" env:"WP_IMPORT_CONNECTION" default:"doctrine" description:"The connection name"`

	// Source export
	XMLPath     string `long:"xml" env:"WP_IMPORT_XML" description:"An XML file created by the Wordpress export feature"`
	AuthorsPath string `long:"authors" env:"WP_IMPORT_AUTHORS" description:"An author mapping XML file (see the blog importer)"`

	// Transformation switches
	Clear            bool   `long:"clear" description:"Remove existing posts before importing"`
	IgnoreEmptyTitle bool   `long:"ignore-empty-title" description:"Ignore all posts with empty titles"`
	Disqus           bool   `long:"disqus" description:"Import existing Disqus threads"`
	DefaultUsername  string `long:"defaultUsername" env:"WP_IMPORT_DEFAULT_USERNAME" default:"admin" description:"Default author of posts"`
	Category         string `long:"category" env:"WP_IMPORT_CATEGORY" default:"admin" description:"Category to apply to ALL imported posts"`
	CategoriesAsTags bool   `long:"categories-as-tags" description:"All categories found in the import are treated as tags"`
	TagToEntity      bool   `long:"tag-to-entity" description:"Convert tags to entity relationships if an entity by that name exists (applied after categories-as-tags)"`
	SkipConfirmation bool   `long:"skip-confirmation" description:"Skip confirmation prompt"`

	// Hand-off
	ImporterConfig string `long:"importer-config" env:"WP_IMPORT_IMPORTER_CONFIG" description:"YAML file describing the downstream importer command"`
	OutputPath     string `long:"output" description:"Write the intermediate posts document to this path instead of running the importer"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line arguments and environment variables. A nil
// configuration with a nil error means help was shown.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	// Errors are reported by the caller, help is written here.
	parser := flags.NewParser(&raw, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "wp-import"
	parser.Usage = "--xml=wordpress-export-file.xml [--disqus]"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil, nil
		}
		return nil, &ConfigurationError{Reason: err.Error()}
	}

	if raw.XMLPath == "" {
		return nil, &ConfigurationError{
			Option: "xml",
			Reason: "required option --xml=filename not given. Generate a Wordpress export XML file first",
		}
	}

	return &Cfg{
		Env:              raw.Env,
		Connection:       raw.Connection,
		XMLPath:          raw.XMLPath,
		AuthorsPath:      raw.AuthorsPath,
		Clear:            raw.Clear,
		IgnoreEmptyTitle: raw.IgnoreEmptyTitle,
		Disqus:           raw.Disqus,
		DefaultUsername:  raw.DefaultUsername,
		Category:         raw.Category,
		CategoriesAsTags: raw.CategoriesAsTags,
		TagToEntity:      raw.TagToEntity,
		SkipConfirmation: raw.SkipConfirmation,
		ImporterConfig:   raw.ImporterConfig,
		OutputPath:       raw.OutputPath,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}, nil
}
