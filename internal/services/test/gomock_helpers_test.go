package services_test

import (
	"context"
	"io"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeTxManager struct{}

type fakeSession struct{ ctx context.Context }

func (fakeTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeSession) Tx() pgx.Tx { return nil }

func (s fakeSession) Context() context.Context { return s.ctx }

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

func ptrString(v string) *string { return &v }

func ptrInt32(v int32) *int32 { return &v }

func ptrTime(t time.Time) *time.Time { return &t }

func publishedVideo(title string) *po.VideoWithRelations {
	published := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	owner := uuid.New()
	return &po.VideoWithRelations{
		Video: po.Video{
			ID:              uuid.New(),
			UserID:          &owner,
			ProfileID:       &owner,
			Title:           title,
			VideoURL:        "https://cdn.example.com/" + title + ".mp4",
			DurationSeconds: ptrInt32(125),
			Tags:            []string{"space"},
			PublishedAt:     &published,
			SourceType:      po.SourceTypeUserUpload,
			CreatedAt:       published,
			UpdatedAt:       published,
		},
		Profile: &po.ProfileSummary{ID: owner, Name: ptrString("Astro")},
	}
}
