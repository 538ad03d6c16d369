package config

const (
	envClassifyDaysBack    = "CLASSIFY_DAYS_BACK"
	envClassifyDaysForward = "CLASSIFY_DAYS_FORWARD"
	envBucketCap           = "BUCKET_CAP"
)

// ClassifyConfig controls the fixture classification window and bucket sizes.
type ClassifyConfig struct {
	DaysBack    int
	DaysForward int
	BucketCap   int
}

func loadClassify() ClassifyConfig {
	return ClassifyConfig{
		DaysBack:    intEnvOrDefault(envClassifyDaysBack, defaultClassifyDaysBack),
		DaysForward: intEnvOrDefault(envClassifyDaysForward, defaultClassifyDaysForward),
		BucketCap:   intEnvOrDefault(envBucketCap, defaultBucketCap),
	}
}
