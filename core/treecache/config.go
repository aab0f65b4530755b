package treecache

// Config holds configuration for the development tree cache.
type Config struct {
	// Bucket is the bucket the serialized tree is stored in.
	Bucket string `mapstructure:"bucket" default:"treeboard"`
	// Object is the object key of the serialized tree.
	Object string `mapstructure:"object" default:"cache/tree.json"`
}
