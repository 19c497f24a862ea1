package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/wp-import/app/cfg"
	"github.com/lysyi3m/wp-import/app/feed"
	"github.com/lysyi3m/wp-import/app/importer"
)

var _ TaskInterface = (*ImportWordpressTask)(nil)

// ImportWordpressTask converts one WordPress export and hands the result to
// the blog importer.
type ImportWordpressTask struct {
	Task
	cfg         *cfg.Cfg
	transformer *feed.Transformer
	handoff     *importer.Handoff
}

func NewImportWordpressTask(appCfg *cfg.Cfg, transformer *feed.Transformer, handoff *importer.Handoff) *ImportWordpressTask {
	return &ImportWordpressTask{
		Task:        NewTask(TaskTypeImportWordpress, appCfg.XMLPath),
		cfg:         appCfg,
		transformer: transformer,
		handoff:     handoff,
	}
}

func (t *ImportWordpressTask) Execute(ctx context.Context) error {
	t.Start()
	logger := slog.With("task_id", t.ID)

	data, err := os.ReadFile(t.Source)
	if err != nil {
		return &feed.ParseError{Path: t.Source, Err: err}
	}

	result, err := t.transformer.Run(data, t.options())
	if err != nil {
		var parseErr *feed.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = t.Source
		}
		return err
	}

	for _, notice := range result.Diagnostics.Notices {
		logger.Warn(notice)
	}
	for _, post := range result.Posts {
		logger.Debug("Post accepted", "slug", post.Slug, "link", post.Link)
	}

	logger.Info("Export transformed",
		"source", t.Source,
		"items", result.Items,
		"posts", len(result.Posts),
		"skipped_not_post", result.Diagnostics.Skipped[feed.SkipNotPost],
		"skipped_child", result.Diagnostics.Skipped[feed.SkipChild],
		"skipped_empty_title", result.Diagnostics.Skipped[feed.SkipEmptyTitle],
		"skipped_draft", result.Diagnostics.Skipped[feed.SkipDraft])

	if t.cfg.OutputPath != "" {
		if err := importer.WriteDocument(t.cfg.OutputPath, result.Document); err != nil {
			return err
		}
		logger.Info("Posts document written, importer not run", "path", t.cfg.OutputPath, "duration", t.GetDuration())
		return nil
	}

	if err := t.handoff.Run(ctx, result.Document, t.request()); err != nil {
		return fmt.Errorf("failed to hand off %d posts: %w", len(result.Posts), err)
	}

	logger.Info("Import finished", "posts", len(result.Posts), "duration", t.GetDuration())
	return nil
}

func (t *ImportWordpressTask) options() feed.Options {
	return feed.Options{
		IgnoreEmptyTitle: t.cfg.IgnoreEmptyTitle,
		Disqus:           t.cfg.Disqus,
		Category:         t.cfg.Category,
		CategoriesAsTags: t.cfg.CategoriesAsTags,
	}
}

func (t *ImportWordpressTask) request() importer.Request {
	return importer.Request{
		Env:              t.cfg.Env,
		Connection:       t.cfg.Connection,
		Clear:            t.cfg.Clear,
		TagToEntity:      t.cfg.TagToEntity,
		SkipConfirmation: t.cfg.SkipConfirmation,
		AuthorsPath:      t.cfg.AuthorsPath,
		DefaultUsername:  t.cfg.DefaultUsername,
	}
}
