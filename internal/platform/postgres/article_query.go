package postgres

import (
	"fmt"
	"strings"

	"github.com/ncnews/ncnews/internal/store"
)

// articleSortColumns is the closed set of columns the article list may be
// sorted by. Sort columns are spliced into the ORDER BY clause as raw
// identifiers (SQL cannot bind them), so membership here is checked before
// any composition happens. comment_count refers to the aggregate alias, not
// a real column.
var articleSortColumns = map[string]struct{}{
	"article_id":      {},
	"title":           {},
	"topic":           {},
	"author":          {},
	"created_at":      {},
	"votes":           {},
	"article_img_url": {},
	"comment_count":   {},
	"body":            {},
}

// articleOrders is the closed set of sort directions.
var articleOrders = map[string]struct{}{
	"asc":  {},
	"desc": {},
}

// buildArticleListQuery constructs the parameterized page query and the
// matching total-count query for the given options. The topic filter,
// limit, and offset are always bound as parameters. It returns
// store.ErrInvalidInput if SortBy or Order is outside its allow-list; the
// database is never touched in that case.
//
// The count query applies the same filter but no pagination, so total_count
// reflects filtering only.
func buildArticleListQuery(opts store.ArticleListOptions) (query string, args []any, countQuery string, countArgs []any, err error) {
	if _, ok := articleSortColumns[opts.SortBy]; !ok {
		return "", nil, "", nil, fmt.Errorf("%w: sort_by %q", store.ErrInvalidInput, opts.SortBy)
	}
	if _, ok := articleOrders[opts.Order]; !ok {
		return "", nil, "", nil, fmt.Errorf("%w: order %q", store.ErrInvalidInput, opts.Order)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT
		articles.article_id,
		articles.title,
		articles.topic,
		articles.author,
		articles.created_at,
		articles.votes,
		articles.article_img_url,
		COUNT(comments.comment_id)::text AS comment_count
	FROM articles
	LEFT JOIN comments ON articles.article_id = comments.article_id`)

	countQuery = `SELECT COUNT(*) FROM articles`

	if opts.Topic != "" {
		sb.WriteString(` WHERE articles.topic = $1`)
		args = append(args, opts.Topic)
		countQuery += ` WHERE articles.topic = $1`
		countArgs = append(countArgs, opts.Topic)
	}

	sb.WriteString(` GROUP BY articles.article_id`)

	// Safe to splice: both values passed the allow-list checks above. The
	// aggregate is ordered by its alias, real columns by qualified name.
	if opts.SortBy == "comment_count" {
		sb.WriteString(` ORDER BY comment_count ` + strings.ToUpper(opts.Order))
	} else {
		sb.WriteString(` ORDER BY articles.` + opts.SortBy + ` ` + strings.ToUpper(opts.Order))
	}

	sb.WriteString(fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2))
	args = append(args, opts.Limit, opts.Offset())

	return sb.String(), args, countQuery, countArgs, nil
}
