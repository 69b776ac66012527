package bench

// benchmarksConfig holds all parameters for each benchmark.
type benchmarksConfig struct {
	benchmarkSimpleConfig
	benchmarkComplexConfig
	benchmarkManyConfig
	benchmarkLargeConfig
}

func getMattnConfig() benchmarksConfig {
	return benchmarksConfig{
		benchmarkSimpleConfig: benchmarkSimpleConfig{
			insertXUsers:     100_000,
			insertGoroutines: 1,
		},

		benchmarkComplexConfig: benchmarkComplexConfig{
			insertXUsers:              200,
			insertYArticlesPerUser:    100,
			insertZCommentsPerArticle: 20,
			insertGoroutines:          1,
		},

		benchmarkManyConfig: benchmarkManyConfig{
			insertXUsers:     1_000,
			queryUsersYTimes: 1_000,
			insertGoroutines: 1,
			queryGoroutines:  1,
		},

		benchmarkLargeConfig: benchmarkLargeConfig{
			insertXUsers:     10_000,
			insertYBytes:     10_000,
			insertGoroutines: 1,
		},
	}
}

func getKitConfig() benchmarksConfig {
	// Writes stay single-goroutine: the engine allows one writer at a
	// time and the wrapper's connections are single-owner. Reads fan
	// out over the connection pool.
	conf := getMattnConfig()
	conf.benchmarkManyConfig.queryGoroutines = 10
	return conf
}
