package config

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, path string, seed bool, seedConfig string) *Repository {
	return &Repository{
		backend:    backend,
		path:       path,
		seed:       seed,
		seedConfig: seedConfig,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewAnalysisForTest creates an Analysis config for testing purposes
func NewAnalysisForTest(endpoint, apiKey string) *Analysis {
	return &Analysis{
		endpoint: endpoint,
		apiKey:   apiKey,
		userID:   "1",
	}
}

// NewLockForTest creates a Lock config for testing purposes
func NewLockForTest(passcode string) *Lock {
	return &Lock{passcode: passcode}
}
