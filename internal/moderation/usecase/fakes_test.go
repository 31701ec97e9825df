package usecase

import (
	"context"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/minio"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type fakeFlagRepo struct {
	flags map[string]*model.ContentFlag

	createErr error
	updateErr error
	appendErr error
	listErr   error

	exactCounts repository.ExactCounts
	exactErr    error

	appendedActions []repository.AppendActionOptions
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{flags: map[string]*model.ContentFlag{}}
}

func (f *fakeFlagRepo) CreateFlag(ctx context.Context, opts repository.CreateFlagOptions) (*model.ContentFlag, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	flag := &model.ContentFlag{
		ID:          opts.ID,
		ContentID:   opts.ContentID,
		ContentType: opts.ContentType,
		FlagType:    opts.FlagType,
		Severity:    opts.Severity,
		Status:      opts.Status,
		FlaggedBy:   opts.FlaggedBy,
		FlaggedAt:   time.Now(),
		Reason:      opts.Reason,
		Description: opts.Description,
	}
	f.flags[flag.ID] = flag
	return flag, nil
}

func (f *fakeFlagRepo) GetFlagByID(ctx context.Context, id string) (*model.ContentFlag, error) {
	flag, ok := f.flags[id]
	if !ok {
		return nil, repository.ErrFlagNotFound
	}
	copied := *flag
	return &copied, nil
}

func (f *fakeFlagRepo) ListFlags(ctx context.Context, opts repository.ListFlagsOptions) ([]*model.ContentFlag, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []*model.ContentFlag
	for _, flag := range f.flags {
		if opts.Status != "" && flag.Status != opts.Status {
			continue
		}
		if opts.FlagType != "" && flag.FlagType != opts.FlagType {
			continue
		}
		if opts.Severity != "" && flag.Severity != opts.Severity {
			continue
		}
		if opts.ContentType != "" && flag.ContentType != opts.ContentType {
			continue
		}
		copied := *flag
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFlagRepo) ListOpenFlags(ctx context.Context, limit int) ([]*model.ContentFlag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*model.ContentFlag
	for _, flag := range f.flags {
		if model.IsTerminal(flag.Status) {
			continue
		}
		copied := *flag
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeFlagRepo) UpdateReview(ctx context.Context, opts repository.UpdateReviewOptions) (*model.ContentFlag, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	flag, ok := f.flags[opts.FlagID]
	if !ok {
		return nil, repository.ErrFlagNotFound
	}
	if flag.Status != opts.ExpectedStatus {
		return nil, repository.ErrFlagUpdateConflict
	}
	flag.Status = opts.NewStatus
	flag.ReviewedBy = opts.ReviewedBy
	reviewedAt := opts.ReviewedAt
	flag.ReviewedAt = &reviewedAt
	flag.ResolutionNotes = opts.ResolutionNotes
	copied := *flag
	return &copied, nil
}

func (f *fakeFlagRepo) AppendAction(ctx context.Context, opts repository.AppendActionOptions) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appendedActions = append(f.appendedActions, opts)
	return nil
}

func (f *fakeFlagRepo) ExactCounts(ctx context.Context, weekStart time.Time) (repository.ExactCounts, error) {
	if f.exactErr != nil {
		return repository.ExactCounts{}, f.exactErr
	}
	return f.exactCounts, nil
}

type fakeSignalRepo struct {
	reviews  []model.LowRatedReview
	messages []model.RecentMessage
	audits   []model.SecurityAuditAction

	reviewsErr  error
	messagesErr error
	auditsErr   error

	totalReviews  int
	lowRated      int
	totalMessages int
	recent        int
	auditCounts   repository.AuditCounts
	suspended     int

	countErr error
}

func (f *fakeSignalRepo) GetLowRatedReviews(ctx context.Context, limit int) ([]model.LowRatedReview, error) {
	return f.reviews, f.reviewsErr
}

func (f *fakeSignalRepo) GetRecentMessages(ctx context.Context, opts repository.RecentWindowOptions) ([]model.RecentMessage, error) {
	return f.messages, f.messagesErr
}

func (f *fakeSignalRepo) GetSecurityAuditActions(ctx context.Context, opts repository.RecentWindowOptions) ([]model.SecurityAuditAction, error) {
	return f.audits, f.auditsErr
}

func (f *fakeSignalRepo) CountReviews(ctx context.Context) (int, int, error) {
	return f.totalReviews, f.lowRated, f.countErr
}

func (f *fakeSignalRepo) CountMessages(ctx context.Context, since time.Time) (int, int, error) {
	return f.totalMessages, f.recent, f.countErr
}

func (f *fakeSignalRepo) CountAuditActions(ctx context.Context, since time.Time) (repository.AuditCounts, error) {
	return f.auditCounts, f.countErr
}

func (f *fakeSignalRepo) CountSuspendedCompanies(ctx context.Context) (int, error) {
	return f.suspended, f.countErr
}

type fakeCacheRepo struct {
	entries map[string][]byte

	getErr  error
	saveErr error

	saved   []string
	deleted []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.entries[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeCacheRepo) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries[key] = data
	f.saved = append(f.saved, key)
	return nil
}

func (f *fakeCacheRepo) Delete(ctx context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeDispatcher struct {
	dispatched [][]model.ContentAction
	err        error
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, flag *model.ContentFlag, actions []model.ContentAction) error {
	f.dispatched = append(f.dispatched, actions)
	return f.err
}

type fakePublisher struct {
	created  []string
	reviewed []string
}

func (f *fakePublisher) FlagCreated(ctx context.Context, flag *model.ContentFlag) {
	f.created = append(f.created, flag.ID)
}

func (f *fakePublisher) FlagReviewed(ctx context.Context, flag *model.ContentFlag, decision string) {
	f.reviewed = append(f.reviewed, flag.ID+":"+decision)
}

type fakeMinIO struct {
	presignErr error
}

func (f *fakeMinIO) HealthCheck(ctx context.Context) error { return nil }

func (f *fakeMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return true, nil
}

func (f *fakeMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	return true, nil
}

func (f *fakeMinIO) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &minio.PresignedURLResponse{
		URL:       "https://storage.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

type testEnv struct {
	flagRepo   *fakeFlagRepo
	signalRepo *fakeSignalRepo
	cacheRepo  *fakeCacheRepo
	dispatcher *fakeDispatcher
	publisher  *fakePublisher
	minio      *fakeMinIO
	uc         *implUseCase
}

func newTestEnv(cfg Config) *testEnv {
	env := &testEnv{
		flagRepo:   newFakeFlagRepo(),
		signalRepo: &fakeSignalRepo{},
		cacheRepo:  newFakeCacheRepo(),
		dispatcher: &fakeDispatcher{},
		publisher:  &fakePublisher{},
		minio:      &fakeMinIO{},
	}
	env.uc = New(nopLogger{}, cfg, env.flagRepo, env.signalRepo, env.cacheRepo,
		env.dispatcher, env.publisher, env.minio).(*implUseCase)
	return env
}
