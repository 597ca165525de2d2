package api

import (
	"context"

	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// Function-field mocks of the store interfaces. A nil field means "succeed
// with a zero result", so tests only wire the calls they care about.

type MockTopicStore struct {
	ListFn      func(ctx context.Context) ([]domain.Topic, error)
	GetBySlugFn func(ctx context.Context, slug string) (*domain.Topic, error)
	CreateFn    func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

var _ store.TopicStore = (*MockTopicStore)(nil)

func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Topic{}, nil
}

func (m *MockTopicStore) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return &domain.Topic{Slug: slug}, nil
}

func (m *MockTopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, topic)
	}
	return topic, nil
}

type MockArticleStore struct {
	GetByIDFn        func(ctx context.Context, articleID int) (*domain.Article, error)
	ListFn           func(ctx context.Context, opts store.ArticleListOptions) ([]domain.Article, int, error)
	CreateFn         func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	IncrementVotesFn func(ctx context.Context, articleID int, delta int) (*domain.Article, error)
	DeleteFn         func(ctx context.Context, articleID int) error
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

func (m *MockArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, articleID)
	}
	return &domain.Article{ArticleID: articleID}, nil
}

func (m *MockArticleStore) List(ctx context.Context, opts store.ArticleListOptions) ([]domain.Article, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, opts)
	}
	return []domain.Article{}, 0, nil
}

func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}
	return article, nil
}

func (m *MockArticleStore) IncrementVotes(ctx context.Context, articleID int, delta int) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, articleID, delta)
	}
	return &domain.Article{ArticleID: articleID, Votes: delta}, nil
}

func (m *MockArticleStore) Delete(ctx context.Context, articleID int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, articleID)
	}
	return nil
}

type MockCommentStore struct {
	ListByArticleFn  func(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error)
	ListAllFn        func(ctx context.Context) ([]domain.Comment, error)
	CreateFn         func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	IncrementVotesFn func(ctx context.Context, commentID int, delta int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, commentID int) error
}

var _ store.CommentStore = (*MockCommentStore)(nil)

func (m *MockCommentStore) ListByArticle(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID, page)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentStore) ListAll(ctx context.Context) ([]domain.Comment, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	return comment, nil
}

func (m *MockCommentStore) IncrementVotes(ctx context.Context, commentID int, delta int) (*domain.Comment, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, commentID, delta)
	}
	return &domain.Comment{CommentID: commentID, Votes: delta}, nil
}

func (m *MockCommentStore) Delete(ctx context.Context, commentID int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, commentID)
	}
	return nil
}

type MockUserStore struct {
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return &domain.User{Username: username}, nil
}
