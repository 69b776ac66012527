package bench

import (
	"fmt"
	"time"
)

type benchmarkComplexConfig struct {
	insertXUsers              int
	insertYArticlesPerUser    int
	insertZCommentsPerArticle int
	insertGoroutines          int
}

// runBenchmarkComplex inserts X users, each with Y articles, and each
// article with Z comments. Then it queries all users, articles, and
// comments with a JOIN query.
func runBenchmarkComplex(
	r runner, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkComplexConfig
	start := time.Now()
	var totalReads, totalWrites uint64

	writes, err := insertConcurrently(
		r,
		fmt.Sprintf("Inserting %d users", conf.insertXUsers),
		conf.insertGoroutines,
		conf.insertXUsers,
		func(idx int) insertStmt {
			return insertStmt{
				sqlText: "INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
				args:    []any{time.Now().Unix(), fmt.Sprintf("user%d@example.com", idx), 1},
			}
		},
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error inserting users: %w", err)
	}
	totalWrites += writes

	totalArticles := conf.insertXUsers * conf.insertYArticlesPerUser
	writes, err = insertConcurrently(
		r,
		fmt.Sprintf("Inserting %d articles", totalArticles),
		conf.insertGoroutines,
		totalArticles,
		func(idx int) insertStmt {
			userID := (idx % conf.insertXUsers) + 1
			return insertStmt{
				sqlText: "INSERT INTO articles (created, userId, text) VALUES (?, ?, ?)",
				args:    []any{time.Now().Unix(), userID, fmt.Sprintf("article for user %d", userID)},
			}
		},
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error inserting articles: %w", err)
	}
	totalWrites += writes

	totalComments := totalArticles * conf.insertZCommentsPerArticle
	writes, err = insertConcurrently(
		r,
		fmt.Sprintf("Inserting %d comments", totalComments),
		conf.insertGoroutines,
		totalComments,
		func(idx int) insertStmt {
			articleID := (idx % totalArticles) + 1
			return insertStmt{
				sqlText: "INSERT INTO comments (created, articleId, text) VALUES (?, ?, ?)",
				args:    []any{time.Now().Unix(), articleID, "comment"},
			}
		},
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error inserting comments: %w", err)
	}
	totalWrites += writes

	bar := newStepBar("Reading users, articles, and comments", 1)
	totalReads, err = r.QueryCount(`
		SELECT
		users.id, users.created, users.email, users.active,
		articles.id, articles.created, articles.userId, articles.text,
		comments.id, comments.created, comments.articleId, comments.text
		FROM users
		LEFT JOIN articles ON articles.userId = users.id
		LEFT JOIN comments ON comments.articleId = articles.id
		ORDER BY users.created, articles.created, comments.created
	`)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error querying: %w", err)
	}
	bar.Done()

	return benchmarkResult{
		Name:        "Complex",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
