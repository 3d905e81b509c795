package queries

import "context"

type ContactQueries interface {
	List(ctx context.Context) ([]*ContactView, error)
}

type ContactViewRepo interface {
	FindAll(ctx context.Context) ([]*ContactView, error)
}

type contactQueriesImpl struct {
	repo ContactViewRepo
}

func NewContactQueries(repo ContactViewRepo) ContactQueries {
	return &contactQueriesImpl{repo: repo}
}

func (q *contactQueriesImpl) List(ctx context.Context) ([]*ContactView, error) {
	return q.repo.FindAll(ctx)
}
