package cfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion(), "GetVersion should never return empty string")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"--xml=export.xml"})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "export.xml", cfg.XMLPath)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "doctrine", cfg.Connection)
	assert.Equal(t, "admin", cfg.DefaultUsername)
	assert.Equal(t, "admin", cfg.Category)
	assert.Empty(t, cfg.AuthorsPath)
	assert.Empty(t, cfg.ImporterConfig)
	assert.Empty(t, cfg.OutputPath)
	assert.False(t, cfg.Clear)
	assert.False(t, cfg.IgnoreEmptyTitle)
	assert.False(t, cfg.Disqus)
	assert.False(t, cfg.CategoriesAsTags)
	assert.False(t, cfg.TagToEntity)
	assert.False(t, cfg.SkipConfirmation)
	assert.Equal(t, GetVersion(), cfg.Version)
}

func TestLoadAllOptions(t *testing.T) {
	cfg, err := Load([]string{
		"--xml", "blog.xml",
		"--env=prod",
		"--connection=main",
		"--authors=authors.xml",
		"--clear",
		"--ignore-empty-title",
		"--disqus",
		"--defaultUsername=editor",
		"--category=Imported",
		"--categories-as-tags",
		"--tag-to-entity",
		"--skip-confirmation",
		"--importer-config=importer.yml",
		"--output=posts.xml",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "blog.xml", cfg.XMLPath)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "main", cfg.Connection)
	assert.Equal(t, "authors.xml", cfg.AuthorsPath)
	assert.True(t, cfg.Clear)
	assert.True(t, cfg.IgnoreEmptyTitle)
	assert.True(t, cfg.Disqus)
	assert.Equal(t, "editor", cfg.DefaultUsername)
	assert.Equal(t, "Imported", cfg.Category)
	assert.True(t, cfg.CategoriesAsTags)
	assert.True(t, cfg.TagToEntity)
	assert.True(t, cfg.SkipConfirmation)
	assert.Equal(t, "importer.yml", cfg.ImporterConfig)
	assert.Equal(t, "posts.xml", cfg.OutputPath)
}

func TestLoadEmptyCategoryDisablesGlobalCategory(t *testing.T) {
	cfg, err := Load([]string{"--xml=export.xml", "--category="})
	require.NoError(t, err)
	assert.Empty(t, cfg.Category)
}

func TestLoadXMLFromEnvironment(t *testing.T) {
	t.Setenv("WP_IMPORT_XML", "from-env.xml")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.xml", cfg.XMLPath)
}

func TestLoadMissingXML(t *testing.T) {
	t.Setenv("WP_IMPORT_XML", "")

	cfg, err := Load([]string{"--disqus"})
	assert.Nil(t, cfg)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "xml", cfgErr.Option)
	assert.Contains(t, err.Error(), "--xml=filename")
}

func TestLoadUnknownOption(t *testing.T) {
	_, err := Load([]string{"--xml=export.xml", "--no-such-option"})

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadHelp(t *testing.T) {
	cfg, err := Load([]string{"--help"})
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
